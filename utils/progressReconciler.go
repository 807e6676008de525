package utils

import (
	"log"
	"time"

	"skillforge/database"
	courseModels "skillforge/models/course"
	"skillforge/services"

	"github.com/robfig/cron/v3"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[PROGRESS-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeProgressReconciler schedules a nightly pass that re-runs the
// progress recompute for every approved enrollment. The recompute is
// idempotent, so this repairs enrollments missed by a failed fan-out
// without needing a transaction across courses.
func InitializeProgressReconciler() {
	logReconciler("Initializing progress reconciler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		logReconciler("Running nightly progress reconciliation...")
		ReconcileEnrollmentProgress()
	})

	c.Start()
	logReconciler("Progress reconciler started - runs daily at 2 AM")
}

// ReconcileEnrollmentProgress walks all approved enrollments and recomputes
// their derived progress fields from attendance.
func ReconcileEnrollmentProgress() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("status = ? AND is_deleted = ?",
		courseModels.EnrollmentStatusApproved, false).Find(&enrollments).Error; err != nil {
		logReconciler("Failed to load enrollments: " + err.Error())
		return
	}

	repaired := 0
	for _, e := range enrollments {
		if err := services.RecomputeProgress(db, e.StudentID, e.CourseID); err != nil {
			log.Printf("[PROGRESS-RECONCILER] Recompute failed for enrollment %d: %v", e.ID, err)
			continue
		}
		repaired++
	}

	logReconciler("Reconciliation finished")
	log.Printf("[PROGRESS-RECONCILER] Recomputed %d of %d enrollments", repaired, len(enrollments))
}

package services

import (
	"math"

	courseModels "skillforge/models/course"

	"gorm.io/gorm"
)

// RecomputeProgress derives DaysCompleted and Progress for one enrollment
// from stored attendance and persists them. It is a pure function of the
// attendance table, so re-running it with unchanged attendance is a no-op.
func RecomputeProgress(db *gorm.DB, studentID, courseID uint) error {
	var enrollment courseModels.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		studentID, courseID, courseModels.EnrollmentStatusApproved, false).First(&enrollment).Error; err != nil {
		return err
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return err
	}

	var presentDays int64
	if err := db.Model(&courseModels.Attendance{}).
		Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			studentID, courseID, courseModels.AttendancePresent, false).
		Count(&presentDays).Error; err != nil {
		return err
	}

	enrollment.DaysCompleted = int(presentDays)
	if course.TotalDays > 0 {
		enrollment.Progress = int(math.Round(float64(presentDays) / float64(course.TotalDays) * 100))
	} else {
		enrollment.Progress = 0
	}

	return db.Save(&enrollment).Error
}

// RecomputeCourseProgress re-runs the progress calculation for every
// approved enrollment in a course. Updates are independent row writes, so
// a failure partway through leaves earlier enrollments updated; the last
// error is returned and the nightly reconciler repairs any gap.
func RecomputeCourseProgress(db *gorm.DB, courseID uint) error {
	var enrollments []courseModels.Enrollment
	if err := db.Where("course_id = ? AND status = ? AND is_deleted = ?",
		courseID, courseModels.EnrollmentStatusApproved, false).Find(&enrollments).Error; err != nil {
		return err
	}

	var lastErr error
	for _, e := range enrollments {
		if err := RecomputeProgress(db, e.StudentID, courseID); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

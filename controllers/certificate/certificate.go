package certificateController

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	"skillforge/services"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

func requireUser(c *fiber.Ctx) (*models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func eligibilityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need an approved enrollment in this course!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}
}

// GetEligibility returns the computed certificate gates for the acting
// student and the course.
func GetEligibility(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	report, err := services.EvaluateEligibility(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return eligibilityError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligibility evaluated successfully!", report)
}

// GenerateCertificate issues the certificate once eligibility holds, or
// returns the existing one. Every call counts as a download.
func GenerateCertificate(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Gates are re-evaluated here instead of trusting an earlier eligibility
	// call; attendance or ratings may have changed in between.
	report, err := services.EvaluateEligibility(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		return eligibilityError(c, err)
	}

	if !report.IsCourseCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not yet completed", nil)
	}
	if !report.MeetsAttendanceRequirement {
		message := fmt.Sprintf("Your attendance is %d%%; at least %d%% is required for a certificate",
			report.AttendancePercentage, services.MinimumAttendancePercentage)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
	}
	if len(report.PendingReviews) > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please rate all completed days first", fiber.Map{
			"pending_reviews": report.PendingReviews,
		})
	}
	if !report.SurveyOrEvalCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course evaluation first", nil)
	}

	now := time.Now()

	// Already issued: only bump the download counter.
	var existing courseModels.Certificate
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).First(&existing).Error; err == nil {
		existing.DownloadCount++
		existing.LastDownloadedAt = &now
		if err := database.Database.Db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update certificate!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", existing)
	}

	var course courseModels.Course
	if err := database.Database.Db.Preload("Sections", "is_deleted = ?", false).
		Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var teacher models.User
	database.Database.Db.Where("id = ?", course.TeacherID).First(&teacher)

	stats := courseModels.CompletionStats{
		TotalDays:            report.CompletedDays,
		AttendedDays:         report.PresentDays,
		AttendancePercentage: report.AttendancePercentage,
	}
	for _, s := range course.Sections {
		if s.Date == nil {
			continue
		}
		if stats.StartDate == nil || s.Date.Before(*stats.StartDate) {
			stats.StartDate = s.Date
		}
		if stats.EndDate == nil || s.Date.After(*stats.EndDate) {
			stats.EndDate = s.Date
		}
	}
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	certNumber, verificationCode, err := generateUniqueCodes()
	if err != nil {
		log.Printf("Certificate code generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	certificate := courseModels.Certificate{
		StudentID:         user.ID,
		CourseID:          uint(courseID),
		CertificateNumber: certNumber,
		VerificationCode:  verificationCode,
		StudentName:       user.Name,
		CourseTitle:       course.Title,
		TeacherName:       teacher.Name,
		CompletionStats:   statsJSON,
		DownloadCount:     1,
		LastDownloadedAt:  &now,
		IsValid:           true,
	}

	if err := database.Database.Db.Create(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	// Backfill the survey flag when one exists.
	var survey courseModels.CourseSurvey
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).First(&survey).Error; err == nil {
		survey.CertificateIssued = true
		database.Database.Db.Save(&survey)
	}

	go utils.SendCertificateEmail(user.Email, user.Name, course.Title, certNumber)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate generated successfully!", certificate)
}

// generateUniqueCodes produces a certificate number and verification code,
// retrying against existing rows. Generation is timestamp+random, so a
// collision is unlikely but not impossible.
func generateUniqueCodes() (string, string, error) {
	const maxAttempts = 5

	var certNumber, verificationCode string

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := utils.GenerateCertificateNumber()
		var count int64
		if err := database.Database.Db.Model(&courseModels.Certificate{}).
			Where("certificate_number = ?", candidate).Count(&count).Error; err != nil {
			return "", "", err
		}
		if count == 0 {
			certNumber = candidate
			break
		}
	}
	if certNumber == "" {
		return "", "", fmt.Errorf("could not generate a unique certificate number after %d attempts", maxAttempts)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := utils.GenerateVerificationCode()
		var count int64
		if err := database.Database.Db.Model(&courseModels.Certificate{}).
			Where("verification_code = ?", candidate).Count(&count).Error; err != nil {
			return "", "", err
		}
		if count == 0 {
			verificationCode = candidate
			break
		}
	}
	if verificationCode == "" {
		return "", "", fmt.Errorf("could not generate a unique verification code after %d attempts", maxAttempts)
	}

	return certNumber, verificationCode, nil
}

// GetMyCertificates lists the acting student's certificates.
func GetMyCertificates(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"total":        len(certificates),
	})
}

// VerifyCertificate is the public lookup by verification code.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Locals("verificationCode").(string)

	var certificate courseModels.Certificate
	if err := database.Database.Db.Where("verification_code = ? AND is_deleted = ?", code, false).
		First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", fiber.Map{
		"is_valid":           certificate.IsValid,
		"certificate_number": certificate.CertificateNumber,
		"student_name":       certificate.StudentName,
		"course_title":       certificate.CourseTitle,
		"teacher_name":       certificate.TeacherName,
		"completion_stats":   certificate.CompletionStats,
		"issued_at":          certificate.CreatedAt,
	})
}

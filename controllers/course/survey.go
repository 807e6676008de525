package controllers

import (
	"errors"

	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	"skillforge/services"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitSurvey stores the end-of-course survey with an attendance snapshot
// taken at submission time. One survey per student per course.
func SubmitSurvey(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedSurvey").(*courseValidator.SurveyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing courseModels.CourseSurvey
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted a survey for this course!", nil)
	}

	// The eligibility report carries the attendance numbers the snapshot needs.
	report, err := services.EvaluateEligibility(database.Database.Db, user.ID, uint(courseID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		case errors.Is(err, services.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need an approved enrollment to submit a survey!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
		}
	}

	survey := courseModels.CourseSurvey{
		StudentID:            user.ID,
		CourseID:             uint(courseID),
		ContentRating:        reqData.ContentRating,
		InstructorRating:     reqData.InstructorRating,
		MaterialRating:       reqData.MaterialRating,
		OrganizationRating:   reqData.OrganizationRating,
		OverallRating:        reqData.OverallRating,
		Difficulty:           reqData.Difficulty,
		LikedMost:            reqData.LikedMost,
		Improvements:         reqData.Improvements,
		WouldRecommend:       *reqData.WouldRecommend,
		TotalDays:            report.CompletedDays,
		AttendedDays:         report.PresentDays,
		AttendancePercentage: report.AttendancePercentage,
	}

	if err := database.Database.Db.Create(&survey).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit survey!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Survey submitted successfully!", survey)
}

package controllers

import (
	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitEvaluation stores the fixed 20-question questionnaire. Allowed once
// per student per course, after every course day is completed.
func SubmitEvaluation(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedEvaluation").(*courseValidator.EvaluationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		user.ID, courseID, courseModels.EnrollmentStatusApproved, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need an approved enrollment to submit an evaluation!", nil)
	}

	allDone, err := allSectionsCompleted(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}
	if !allDone {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not yet completed!", nil)
	}

	var existing courseModels.Evaluation
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted an evaluation for this course!", nil)
	}

	evaluation := courseModels.Evaluation{
		StudentID: user.ID,
		CourseID:  uint(courseID),
		Answers:   datatypes.JSONMap(reqData.Answers),
	}

	if err := database.Database.Db.Create(&evaluation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Evaluation submitted successfully!", evaluation)
}

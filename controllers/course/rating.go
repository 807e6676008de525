package controllers

import (
	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitDayRating stores a student's 1-5 rating for one completed day.
// The section must be completed and the student approved; one rating per day.
func SubmitDayRating(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	dayNumber := c.Locals("dayNumber").(int)

	reqData, ok := c.Locals("validatedRating").(*courseValidator.DayRatingRequest)
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
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You need an approved enrollment to rate this course!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("course_id = ? AND day_number = ? AND is_deleted = ?",
		courseID, dayNumber, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course day not found!", nil)
	}

	if !section.Completed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This day is not completed yet!", nil)
	}

	var existing courseModels.DayRating
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND day_number = ? AND is_deleted = ?",
		user.ID, courseID, dayNumber, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already rated this day!", nil)
	}

	rating := courseModels.DayRating{
		StudentID: user.ID,
		CourseID:  uint(courseID),
		DayNumber: dayNumber,
		Rating:    reqData.Rating,
		Comment:   reqData.Comment,
	}

	if err := database.Database.Db.Create(&rating).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Day rating submitted successfully!", rating)
}

// GetCourseDayRatings lists ratings for one owned course.
func GetCourseDayRatings(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	db := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false)
	if day := c.QueryInt("day"); day > 0 {
		db = db.Where("day_number = ?", day)
	}

	var ratings []courseModels.DayRating
	if err := db.Order("day_number asc, created_at asc").Find(&ratings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ratings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched successfully!", fiber.Map{
		"ratings": ratings,
		"total":   len(ratings),
	})
}

package controllers

import (
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"

	"github.com/gofiber/fiber/v2"
)

// requireUser reloads the acting user; handlers bail with 401 when it is gone.
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

// GetActiveCourses lists active courses available to students.
func GetActiveCourses(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", courseModels.CourseStatusActive, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseDetails returns one course with its sections and, when the caller
// is a student, their enrollment.
func GetCourseDetails(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Preload("Sections", "is_deleted = ?", false).
		Preload("Sections.SubSections", "is_deleted = ?", false).
		Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	response := fiber.Map{"course": course}

	if user.Role == models.RoleStudent {
		var enrollment courseModels.Enrollment
		if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
			user.ID, courseID, false).First(&enrollment).Error; err == nil {
			response["enrollment"] = enrollment
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", response)
}

package adminController

import (
	"strconv"
	"strings"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists accounts, optionally filtered by role.
func GetUsers(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if role := models.Role(c.Query("role")); role != "" {
		if !role.IsValid() {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role filter!", nil)
		}
		db = db.Where("role = ?", role)
	}

	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// VerifyTeacher approves a teacher account.
func VerifyTeacher(c *fiber.Ctx) error {
	return setTeacherVerification(c, true)
}

// RevokeTeacher revokes a teacher's verification.
func RevokeTeacher(c *fiber.Ctx) error {
	return setTeacherVerification(c, false)
}

func setTeacherVerification(c *fiber.Ctx, verified bool) error {
	raw := strings.TrimSpace(c.Params("id"))
	teacherID, err := strconv.Atoi(raw)
	if raw == "" || err != nil || teacherID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	var teacher models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?",
		teacherID, models.RoleTeacher, false).First(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Teacher not found!", nil)
	}

	teacher.VerifiedTeacher = verified
	if err := database.Database.Db.Save(&teacher).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update teacher!", nil)
	}

	teacher.Password = ""

	message := "Teacher verified successfully!"
	if !verified {
		message = "Teacher verification revoked!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, teacher)
}

// GetAllCourses lists every course regardless of status.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

package controllers

import (
	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestEnrollment creates a pending enrollment for the acting student.
func RequestEnrollment(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?",
		courseID, courseModels.CourseStatusActive, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	if !course.EnrollmentEnabled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment is closed for this course!", nil)
	}

	var existing courseModels.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already requested enrollment in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		StudentID: user.ID,
		CourseID:  uint(courseID),
		Status:    courseModels.EnrollmentStatusPending,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment requested successfully!", enrollment)
}

// GetMyEnrollments lists the acting student's enrollments with course info.
func GetMyEnrollments(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle string `json:"course_title"`
		TotalDays   int    `json:"total_days"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:  e,
			CourseTitle: course.Title,
			TotalDays:   course.TotalDays,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetCourseEnrollments lists enrollments for one owned course.
func GetCourseEnrollments(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	status := c.Query("status")

	db := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var enrollments []courseModels.Enrollment
	if err := db.Order("created_at asc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// ApproveEnrollment moves a pending enrollment to approved.
func ApproveEnrollment(c *fiber.Ctx) error {
	return resolveEnrollment(c, courseModels.EnrollmentStatusApproved)
}

// RejectEnrollment moves a pending enrollment to rejected.
func RejectEnrollment(c *fiber.Ctx) error {
	return resolveEnrollment(c, courseModels.EnrollmentStatusRejected)
}

func resolveEnrollment(c *fiber.Ctx, newStatus string) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if _, errResp := requireOwnedCourse(c, user, int(enrollment.CourseID)); errResp != nil {
		return errResp
	}

	// Approved and rejected are terminal states.
	if enrollment.Status != courseModels.EnrollmentStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment has already been resolved!", nil)
	}

	enrollment.Status = newStatus
	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	if newStatus == courseModels.EnrollmentStatusApproved {
		var student struct {
			Name  string
			Email string
		}
		var course courseModels.Course
		database.Database.Db.Table("users").Select("name, email").Where("id = ?", enrollment.StudentID).Scan(&student)
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)

		go utils.SendEnrollmentApprovedEmail(student.Email, student.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment "+newStatus+"!", enrollment)
}

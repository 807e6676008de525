package controllers

import (
	"log"
	"time"

	"skillforge/database"
	"skillforge/middleware"
	courseModels "skillforge/models/course"
	"skillforge/services"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// MarkAttendance records a student's presence for one day. Re-marking a day
// updates the existing record, so a day is never counted twice.
func MarkAttendance(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAttendance").(*courseValidator.MarkAttendanceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, errResp := requireOwnedCourse(c, user, int(reqData.CourseID))
	if errResp != nil {
		return errResp
	}

	if reqData.DayNumber > course.TotalDays {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Day number exceeds course duration!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		reqData.StudentID, course.ID, courseModels.EnrollmentStatusApproved, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student does not have an approved enrollment in this course!", nil)
	}

	// Upsert on the (student, course, day) unique triple.
	var attendance courseModels.Attendance
	err := database.Database.Db.Where("student_id = ? AND course_id = ? AND day_number = ? AND is_deleted = ?",
		reqData.StudentID, course.ID, reqData.DayNumber, false).First(&attendance).Error
	if err == nil {
		attendance.Status = reqData.Status
		attendance.MarkedBy = user.ID
		attendance.MarkedAt = time.Now()
		if err := database.Database.Db.Save(&attendance).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark attendance!", nil)
		}
	} else {
		attendance = courseModels.Attendance{
			StudentID: reqData.StudentID,
			CourseID:  course.ID,
			DayNumber: reqData.DayNumber,
			Status:    reqData.Status,
			MarkedBy:  user.ID,
			MarkedAt:  time.Now(),
		}
		if err := database.Database.Db.Create(&attendance).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark attendance!", nil)
		}
	}

	if err := services.RecomputeProgress(database.Database.Db, reqData.StudentID, course.ID); err != nil {
		log.Printf("Progress recompute failed for student %d course %d: %v", reqData.StudentID, course.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance marked successfully!", attendance)
}

// GetCourseAttendance lists attendance for one owned course, optionally
// filtered by day.
func GetCourseAttendance(c *fiber.Ctx) error {
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

	var records []courseModels.Attendance
	if err := db.Order("day_number asc, student_id asc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully!", fiber.Map{
		"attendance": records,
		"total":      len(records),
	})
}

// GetMyAttendance lists the acting student's attendance for one course.
func GetMyAttendance(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var records []courseModels.Attendance
	if err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?",
		user.ID, courseID, false).Order("day_number asc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attendance!", nil)
	}

	present := 0
	for _, r := range records {
		if r.Status == courseModels.AttendancePresent {
			present++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance fetched successfully!", fiber.Map{
		"attendance":   records,
		"present_days": present,
		"total_marked": len(records),
	})
}

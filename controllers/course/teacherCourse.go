package controllers

import (
	"time"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	"skillforge/services"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// requireOwnedCourse loads the course and checks the acting teacher owns it.
// Admin passes the ownership check.
func requireOwnedCourse(c *fiber.Ctx, user *models.User, courseID int) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && course.TeacherID != user.ID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	return &course, nil
}

// CreateCourse creates a course together with one section per day.
func CreateCourse(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if user.Role == models.RoleTeacher && !user.VerifiedTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your teacher account is awaiting admin verification!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		TeacherID:   user.ID,
		TotalDays:   reqData.TotalDays,
		Status:      courseModels.CourseStatusDraft,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// One section per scheduled day, so sections.length always equals totalDays.
	for day := 1; day <= reqData.TotalDays; day++ {
		section := courseModels.Section{
			CourseID:  course.ID,
			DayNumber: day,
		}
		if err := tx.Create(&section).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course sections!", nil)
		}
	}
	tx.Commit()

	database.Database.Db.Preload("Sections").Where("id = ?", course.ID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetTeacherCourses lists courses owned by the acting teacher.
func GetTeacherCourses(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("teacher_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// UpdateCourse applies partial updates. A status change to completed
// requires every section to be individually completed, same as the
// dedicated complete operation.
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.EnrollmentEnabled != nil {
		course.EnrollmentEnabled = *reqData.EnrollmentEnabled
	}
	if reqData.Status != nil && *reqData.Status != course.Status {
		if *reqData.Status == courseModels.CourseStatusCompleted {
			allDone, err := allSectionsCompleted(course.ID)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
			}
			if !allDone {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All course days must be completed before completing the course!", nil)
			}
		}
		course.Status = *reqData.Status
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft-deletes a course.
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// UpdateSection edits one day's heading, description, date and topics.
func UpdateSection(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	dayNumber := c.Locals("dayNumber").(int)

	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("course_id = ? AND day_number = ? AND is_deleted = ?",
		course.ID, dayNumber, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*courseValidator.UpdateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Heading != nil {
		section.Heading = *reqData.Heading
	}
	if reqData.Description != nil {
		section.Description = *reqData.Description
	}
	if reqData.Date != nil {
		section.Date = reqData.Date
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	// Replace topics when the payload carries them.
	if reqData.SubSections != nil {
		if err := tx.Where("section_id = ?", section.ID).Delete(&courseModels.SubSection{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topics!", nil)
		}
		for i, sub := range reqData.SubSections {
			record := courseModels.SubSection{
				SectionID:  section.ID,
				Title:      sub.Title,
				Content:    sub.Content,
				OrderIndex: sub.OrderIndex,
			}
			if record.OrderIndex == 0 {
				record.OrderIndex = i
			}
			if err := tx.Create(&record).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topics!", nil)
			}
		}
	}
	tx.Commit()

	database.Database.Db.Preload("SubSections", "is_deleted = ?", false).Where("id = ?", section.ID).First(&section)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// CompleteDay marks one day's section completed and recomputes progress for
// every approved enrollment in the course.
func CompleteDay(c *fiber.Ctx) error {
	return setDayCompletion(c, true)
}

// UncompleteDay reverts a day's completion and recomputes progress.
func UncompleteDay(c *fiber.Ctx) error {
	return setDayCompletion(c, false)
}

func setDayCompletion(c *fiber.Ctx, completed bool) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	dayNumber := c.Locals("dayNumber").(int)

	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	var section courseModels.Section
	if err := database.Database.Db.Where("course_id = ? AND day_number = ? AND is_deleted = ?",
		course.ID, dayNumber, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.Completed = completed
	if completed {
		now := time.Now()
		section.CompletedBy = &user.ID
		section.CompletedAt = &now
	} else {
		section.CompletedBy = nil
		section.CompletedAt = nil
	}

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	// Fan out to every approved enrollment. The recompute is idempotent and
	// the nightly reconciler repairs anything a mid-loop failure leaves behind.
	services.RecomputeCourseProgress(database.Database.Db, course.ID)

	message := "Day marked as completed!"
	if !completed {
		message = "Day completion reverted!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, section)
}

// MarkCourseCompleted completes the whole course; every section must already
// be completed.
func MarkCourseCompleted(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	course, errResp := requireOwnedCourse(c, user, courseID)
	if errResp != nil {
		return errResp
	}

	allDone, err := allSectionsCompleted(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error!", nil)
	}
	if !allDone {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "All course days must be completed before completing the course!", nil)
	}

	course.Status = courseModels.CourseStatusCompleted
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", course)
}

func allSectionsCompleted(courseID uint) (bool, error) {
	var total, completed int64
	if err := database.Database.Db.Model(&courseModels.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total).Error; err != nil {
		return false, err
	}
	if err := database.Database.Db.Model(&courseModels.Section{}).
		Where("course_id = ? AND completed = ? AND is_deleted = ?", courseID, true, false).Count(&completed).Error; err != nil {
		return false, err
	}
	return total > 0 && total == completed, nil
}

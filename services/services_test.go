package services

import (
	"testing"
	"time"

	"skillforge/models"
	courseModels "skillforge/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.SubSection{},
		&courseModels.Enrollment{},
		&courseModels.Attendance{},
		&courseModels.DayRating{},
		&courseModels.Evaluation{},
		&courseModels.CourseSurvey{},
		&courseModels.Certificate{},
	))

	return db
}

// seedCourse creates a course with one section per day, the first
// completedDays of them marked completed.
func seedCourse(t *testing.T, db *gorm.DB, totalDays, completedDays int) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:     "Go Fundamentals",
		TeacherID: 1,
		TotalDays: totalDays,
		Status:    courseModels.CourseStatusActive,
	}
	require.NoError(t, db.Create(&course).Error)

	for day := 1; day <= totalDays; day++ {
		section := courseModels.Section{
			CourseID:  course.ID,
			DayNumber: day,
			Heading:   "Day topic",
		}
		if day <= completedDays {
			now := time.Now()
			section.Completed = true
			section.CompletedAt = &now
		}
		require.NoError(t, db.Create(&section).Error)
	}

	return &course
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uint, status string) *courseModels.Enrollment {
	t.Helper()

	enrollment := courseModels.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    status,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}

func seedAttendance(t *testing.T, db *gorm.DB, studentID, courseID uint, day int, status string) {
	t.Helper()

	require.NoError(t, db.Create(&courseModels.Attendance{
		StudentID: studentID,
		CourseID:  courseID,
		DayNumber: day,
		Status:    status,
		MarkedBy:  1,
		MarkedAt:  time.Now(),
	}).Error)
}

func seedRating(t *testing.T, db *gorm.DB, studentID, courseID uint, day int) {
	t.Helper()

	require.NoError(t, db.Create(&courseModels.DayRating{
		StudentID: studentID,
		CourseID:  courseID,
		DayNumber: day,
		Rating:    4,
	}).Error)
}

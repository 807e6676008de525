package services

import (
	"testing"

	courseModels "skillforge/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeProgressCountsPresentDays(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 3)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 2, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 3, courseModels.AttendanceAbsent)

	require.NoError(t, RecomputeProgress(db, 10, course.ID))

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", 10, course.ID).First(&enrollment).Error)
	assert.Equal(t, 2, enrollment.DaysCompleted)
	assert.Equal(t, 67, enrollment.Progress) // round(2/3*100)
}

func TestRecomputeProgressIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 4, 4)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)
	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)

	require.NoError(t, RecomputeProgress(db, 10, course.ID))
	require.NoError(t, RecomputeProgress(db, 10, course.ID))

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", 10, course.ID).First(&enrollment).Error)
	assert.Equal(t, 1, enrollment.DaysCompleted)
	assert.Equal(t, 25, enrollment.Progress)
}

func TestRecomputeProgressZeroTotalDays(t *testing.T) {
	db := setupTestDB(t)

	course := courseModels.Course{Title: "Empty", TeacherID: 1, TotalDays: 0}
	require.NoError(t, db.Create(&course).Error)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)
	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)

	require.NoError(t, RecomputeProgress(db, 10, course.ID))

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", 10, course.ID).First(&enrollment).Error)
	assert.Equal(t, 0, enrollment.Progress)
	assert.Equal(t, 1, enrollment.DaysCompleted)
}

func TestRecomputeProgressRequiresApprovedEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 3)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusPending)

	assert.Error(t, RecomputeProgress(db, 10, course.ID))
}

func TestRecomputeCourseProgressFansOut(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 2, 2)

	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)
	seedEnrollment(t, db, 11, course.ID, courseModels.EnrollmentStatusApproved)
	seedEnrollment(t, db, 12, course.ID, courseModels.EnrollmentStatusPending)

	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 2, courseModels.AttendancePresent)
	seedAttendance(t, db, 11, course.ID, 1, courseModels.AttendancePresent)

	require.NoError(t, RecomputeCourseProgress(db, course.ID))

	var first, second, pending courseModels.Enrollment
	require.NoError(t, db.Where("student_id = ?", 10).First(&first).Error)
	require.NoError(t, db.Where("student_id = ?", 11).First(&second).Error)
	require.NoError(t, db.Where("student_id = ?", 12).First(&pending).Error)

	assert.Equal(t, 100, first.Progress)
	assert.Equal(t, 50, second.Progress)
	assert.Equal(t, 0, pending.Progress) // pending enrollments are untouched
}

package services

import (
	"fmt"
	"testing"

	courseModels "skillforge/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func seedEvaluation(t *testing.T, db *gorm.DB, studentID, courseID uint) {
	t.Helper()
	answers := datatypes.JSONMap{}
	for i := 1; i <= courseModels.EvaluationQuestionCount; i++ {
		answers[fmt.Sprintf("q%d", i)] = "fine"
	}
	require.NoError(t, db.Create(&courseModels.Evaluation{
		StudentID: studentID,
		CourseID:  courseID,
		Answers:   answers,
	}).Error)
}

func TestEligibilityAllGatesPass(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 3)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	// 2 present + 1 absent -> 67% attendance
	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 2, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 3, courseModels.AttendanceAbsent)

	for day := 1; day <= 3; day++ {
		seedRating(t, db, 10, course.ID, day)
	}
	seedEvaluation(t, db, 10, course.ID)

	report, err := EvaluateEligibility(db, 10, course.ID)
	require.NoError(t, err)

	assert.True(t, report.IsCourseCompleted)
	assert.Equal(t, 67, report.AttendancePercentage)
	assert.True(t, report.MeetsAttendanceRequirement)
	assert.Empty(t, report.PendingReviews)
	assert.True(t, report.SurveyOrEvalCompleted)
	assert.False(t, report.CertificateIssued)
	assert.True(t, report.CanDownloadCertificate)
}

func TestEligibilityIncompleteCourse(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 1)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	report, err := EvaluateEligibility(db, 10, course.ID)
	require.NoError(t, err)

	assert.False(t, report.IsCourseCompleted)
	assert.Equal(t, 1, report.CompletedDays)
	assert.Equal(t, 3, report.TotalScheduledDays)
	assert.False(t, report.CanDownloadCertificate)
}

func TestEligibilityLowAttendance(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 3)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	// 1/3 present -> 33%
	seedAttendance(t, db, 10, course.ID, 1, courseModels.AttendancePresent)
	seedAttendance(t, db, 10, course.ID, 2, courseModels.AttendanceAbsent)
	seedAttendance(t, db, 10, course.ID, 3, courseModels.AttendanceAbsent)

	for day := 1; day <= 3; day++ {
		seedRating(t, db, 10, course.ID, day)
	}
	seedEvaluation(t, db, 10, course.ID)

	report, err := EvaluateEligibility(db, 10, course.ID)
	require.NoError(t, err)

	assert.True(t, report.IsCourseCompleted)
	assert.Equal(t, 33, report.AttendancePercentage)
	assert.False(t, report.MeetsAttendanceRequirement)
	assert.False(t, report.CanDownloadCertificate)
}

func TestEligibilityPendingReviews(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 3, 3)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	for day := 1; day <= 3; day++ {
		seedAttendance(t, db, 10, course.ID, day, courseModels.AttendancePresent)
	}

	// Day 2's rating is missing
	seedRating(t, db, 10, course.ID, 1)
	seedRating(t, db, 10, course.ID, 3)
	seedEvaluation(t, db, 10, course.ID)

	report, err := EvaluateEligibility(db, 10, course.ID)
	require.NoError(t, err)

	require.Len(t, report.PendingReviews, 1)
	assert.Equal(t, 2, report.PendingReviews[0].DayNumber)
	assert.False(t, report.CanDownloadCertificate)
}

func TestEligibilitySurveySatisfiesFeedbackGate(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 2, 2)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusApproved)

	for day := 1; day <= 2; day++ {
		seedAttendance(t, db, 10, course.ID, day, courseModels.AttendancePresent)
		seedRating(t, db, 10, course.ID, day)
	}

	// Survey instead of evaluation
	require.NoError(t, db.Create(&courseModels.CourseSurvey{
		StudentID:          10,
		CourseID:           course.ID,
		ContentRating:      5,
		InstructorRating:   5,
		MaterialRating:     4,
		OrganizationRating: 4,
		OverallRating:      5,
		Difficulty:         courseModels.DifficultyJustRight,
		LikedMost:          "The hands-on labs were genuinely useful.",
		Improvements:       "More time for questions at the end of each day.",
		WouldRecommend:     true,
	}).Error)

	report, err := EvaluateEligibility(db, 10, course.ID)
	require.NoError(t, err)

	assert.True(t, report.SurveyOrEvalCompleted)
	assert.True(t, report.CanDownloadCertificate)
}

func TestEligibilityMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, err := EvaluateEligibility(db, 10, 999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEligibilityRequiresApprovedEnrollment(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 2, 2)
	seedEnrollment(t, db, 10, course.ID, courseModels.EnrollmentStatusPending)

	_, err := EvaluateEligibility(db, 10, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

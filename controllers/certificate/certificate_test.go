package certificateController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"skillforge/config"
	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	courseModels "skillforge/models/course"
	certificateRoutes "skillforge/routers/certificateRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	certificateRoutes.SetupCertificateRoutes(app)
	return app, db
}

func bearerFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return "Bearer " + token
}

func seedStudent(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	student := models.User{
		Name:     "Priya Nair",
		Email:    "priya@example.com",
		Password: "x",
		Role:     models.RoleStudent,
	}
	require.NoError(t, db.Create(&student).Error)
	return &student
}

// seedEligibleCourse creates a course where the student passes every
// certificate gate: all days completed, full attendance, all ratings and
// an evaluation submitted.
func seedEligibleCourse(t *testing.T, db *gorm.DB, student *models.User, totalDays int) *courseModels.Course {
	t.Helper()

	teacher := models.User{
		Name:     "Arun Mehta",
		Email:    fmt.Sprintf("arun+%d@example.com", time.Now().UnixNano()),
		Password: "x",
		Role:     models.RoleTeacher,
	}
	require.NoError(t, db.Create(&teacher).Error)

	course := courseModels.Course{
		Title:     "Distributed Systems Bootcamp",
		TeacherID: teacher.ID,
		TotalDays: totalDays,
		Status:    courseModels.CourseStatusActive,
	}
	require.NoError(t, db.Create(&course).Error)

	now := time.Now()
	for day := 1; day <= totalDays; day++ {
		require.NoError(t, db.Create(&courseModels.Section{
			CourseID:    course.ID,
			DayNumber:   day,
			Heading:     "Day topic",
			Completed:   true,
			CompletedAt: &now,
		}).Error)
		require.NoError(t, db.Create(&courseModels.Attendance{
			StudentID: student.ID,
			CourseID:  course.ID,
			DayNumber: day,
			Status:    courseModels.AttendancePresent,
			MarkedBy:  teacher.ID,
			MarkedAt:  now,
		}).Error)
		require.NoError(t, db.Create(&courseModels.DayRating{
			StudentID: student.ID,
			CourseID:  course.ID,
			DayNumber: day,
			Rating:    5,
		}).Error)
	}

	require.NoError(t, db.Create(&courseModels.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    courseModels.EnrollmentStatusApproved,
	}).Error)

	answers := datatypes.JSONMap{}
	for i := 1; i <= courseModels.EvaluationQuestionCount; i++ {
		answers[fmt.Sprintf("q%d", i)] = "good"
	}
	require.NoError(t, db.Create(&courseModels.Evaluation{
		StudentID: student.ID,
		CourseID:  course.ID,
		Answers:   answers,
	}).Error)

	return &course
}

func doRequest(t *testing.T, app *fiber.App, method, target, auth string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestGenerateCertificateIssuesThenRefetches(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 3)
	auth := bearerFor(t, student)

	target := fmt.Sprintf("/certificates/generate/%d", course.ID)

	code, env := doRequest(t, app, http.MethodPost, target, auth)
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Status)

	var first courseModels.Certificate
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Regexp(t, regexp.MustCompile(`^SF-\d{4}-[0-9A-Z]+-[0-9A-Z]{4}$`), first.CertificateNumber)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{4}-[0-9A-Z]{4}-[0-9A-Z]{4}$`), first.VerificationCode)
	assert.Equal(t, 1, first.DownloadCount)
	assert.Equal(t, student.Name, first.StudentName)
	assert.Equal(t, course.Title, first.CourseTitle)

	// Second call returns the same certificate and bumps the counter.
	code, env = doRequest(t, app, http.MethodPost, target, auth)
	require.Equal(t, http.StatusOK, code)

	var second courseModels.Certificate
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
	assert.Equal(t, 2, second.DownloadCount)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateCertificateBlockedByIncompleteCourse(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 2)
	auth := bearerFor(t, student)

	// Reopen the last day.
	require.NoError(t, db.Model(&courseModels.Section{}).
		Where("course_id = ? AND day_number = ?", course.ID, 2).
		Updates(map[string]interface{}{"completed": false, "completed_at": nil}).Error)

	code, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/certificates/generate/%d", course.ID), auth)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Course is not yet completed", env.Message)
}

func TestGenerateCertificateBlockedByPendingReviews(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 2)
	auth := bearerFor(t, student)

	require.NoError(t, db.Where("student_id = ? AND course_id = ? AND day_number = ?",
		student.ID, course.ID, 2).Delete(&courseModels.DayRating{}).Error)

	code, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/certificates/generate/%d", course.ID), auth)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please rate all completed days first", env.Message)

	var data struct {
		PendingReviews []struct {
			DayNumber int `json:"day_number"`
		} `json:"pending_reviews"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.PendingReviews, 1)
	assert.Equal(t, 2, data.PendingReviews[0].DayNumber)
}

func TestGenerateCertificateRequiresApprovedEnrollment(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 2)
	auth := bearerFor(t, student)

	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Update("status", courseModels.EnrollmentStatusPending).Error)

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/certificates/generate/%d", course.ID), auth)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestEligibilityEndpoint(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 3)
	auth := bearerFor(t, student)

	code, env := doRequest(t, app, http.MethodGet, fmt.Sprintf("/certificates/eligibility/%d", course.ID), auth)
	require.Equal(t, http.StatusOK, code)

	var report struct {
		IsCourseCompleted      bool `json:"is_course_completed"`
		AttendancePercentage   int  `json:"attendance_percentage"`
		CanDownloadCertificate bool `json:"can_download_certificate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.True(t, report.IsCourseCompleted)
	assert.Equal(t, 100, report.AttendancePercentage)
	assert.True(t, report.CanDownloadCertificate)
}

func TestGenerateCertificateRejectsTeacherRole(t *testing.T) {
	app, db := setupApp(t)
	teacher := models.User{Name: "T", Email: "t@example.com", Password: "x", Role: models.RoleTeacher}
	require.NoError(t, db.Create(&teacher).Error)

	code, _ := doRequest(t, app, http.MethodPost, "/certificates/generate/1", bearerFor(t, &teacher))
	assert.Equal(t, http.StatusForbidden, code)
}

func TestVerifyCertificatePublic(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 2)
	auth := bearerFor(t, student)

	code, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/certificates/generate/%d", course.ID), auth)
	require.Equal(t, http.StatusCreated, code)

	var cert courseModels.Certificate
	require.NoError(t, json.Unmarshal(env.Data, &cert))

	// No Authorization header: verification is public.
	code, env = doRequest(t, app, http.MethodGet, "/certificates/verify/"+cert.VerificationCode, "")
	require.Equal(t, http.StatusOK, code)

	var verified struct {
		IsValid           bool   `json:"is_valid"`
		CertificateNumber string `json:"certificate_number"`
		StudentName       string `json:"student_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &verified))
	assert.True(t, verified.IsValid)
	assert.Equal(t, cert.CertificateNumber, verified.CertificateNumber)
	assert.Equal(t, student.Name, verified.StudentName)

	code, _ = doRequest(t, app, http.MethodGet, "/certificates/verify/AAAA-BBBB-0000", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetMyCertificates(t *testing.T) {
	app, db := setupApp(t)
	student := seedStudent(t, db)
	course := seedEligibleCourse(t, db, student, 2)
	auth := bearerFor(t, student)

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/certificates/generate/%d", course.ID), auth)
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodGet, "/certificates/my", auth)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Certificates []courseModels.Certificate `json:"certificates"`
		Total        int                        `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Total)
	require.Len(t, data.Certificates, 1)
	assert.Equal(t, course.ID, data.Certificates[0].CourseID)
}

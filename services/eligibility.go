package services

import (
	"errors"
	"math"
	"time"

	courseModels "skillforge/models/course"

	"gorm.io/gorm"
)

var (
	// ErrCourseNotFound is returned when the referenced course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrNotEnrolled is returned when the student has no approved enrollment
	// in the course.
	ErrNotEnrolled = errors.New("no approved enrollment for course")
)

// PendingReview describes a completed course day the student has not rated yet.
type PendingReview struct {
	DayNumber int        `json:"day_number"`
	Topic     string     `json:"topic"`
	Date      *time.Time `json:"date"`
}

// EligibilityReport is the computed set of certificate gates for one
// (student, course) pair. It is read-only; nothing is persisted.
type EligibilityReport struct {
	TotalScheduledDays         int             `json:"total_scheduled_days"`
	CompletedDays              int             `json:"completed_days"`
	IsCourseCompleted          bool            `json:"is_course_completed"`
	PresentDays                int             `json:"present_days"`
	AttendancePercentage       int             `json:"attendance_percentage"`
	MeetsAttendanceRequirement bool            `json:"meets_attendance_requirement"`
	PendingReviews             []PendingReview `json:"pending_reviews"`
	SurveyOrEvalCompleted      bool            `json:"survey_or_eval_completed"`
	CertificateIssued          bool            `json:"certificate_issued"`
	CanDownloadCertificate     bool            `json:"can_download_certificate"`
}

// MinimumAttendancePercentage is the attendance gate for certificates.
const MinimumAttendancePercentage = 50

// EvaluateEligibility computes the certificate gates for a student and
// course. The pending-review set is recomputed on every call because day
// completion and rating submission move independently.
func EvaluateEligibility(db *gorm.DB, studentID, courseID uint) (*EligibilityReport, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		studentID, courseID, courseModels.EnrollmentStatusApproved, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	var sections []courseModels.Section
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("day_number asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	report := &EligibilityReport{
		TotalScheduledDays: len(sections),
		PendingReviews:     []PendingReview{},
	}

	for _, s := range sections {
		if s.Completed {
			report.CompletedDays++
		}
	}
	report.IsCourseCompleted = report.TotalScheduledDays > 0 && report.CompletedDays == report.TotalScheduledDays

	var presentDays int64
	if err := db.Model(&courseModels.Attendance{}).
		Where("student_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			studentID, courseID, courseModels.AttendancePresent, false).
		Count(&presentDays).Error; err != nil {
		return nil, err
	}
	report.PresentDays = int(presentDays)
	if report.CompletedDays > 0 {
		report.AttendancePercentage = int(math.Round(float64(presentDays) / float64(report.CompletedDays) * 100))
	}
	report.MeetsAttendanceRequirement = report.AttendancePercentage >= MinimumAttendancePercentage

	// Every completed day needs a rating from this student.
	for _, s := range sections {
		if !s.Completed {
			continue
		}
		var rating courseModels.DayRating
		err := db.Where("student_id = ? AND course_id = ? AND day_number = ? AND is_deleted = ?",
			studentID, courseID, s.DayNumber, false).First(&rating).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		report.PendingReviews = append(report.PendingReviews, PendingReview{
			DayNumber: s.DayNumber,
			Topic:     s.Heading,
			Date:      s.Date,
		})
	}

	// Either a survey or an evaluation satisfies the feedback gate.
	var surveyCount, evalCount int64
	if err := db.Model(&courseModels.CourseSurvey{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Count(&surveyCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&courseModels.Evaluation{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Count(&evalCount).Error; err != nil {
		return nil, err
	}
	report.SurveyOrEvalCompleted = surveyCount > 0 || evalCount > 0

	var certCount int64
	if err := db.Model(&courseModels.Certificate{}).
		Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		Count(&certCount).Error; err != nil {
		return nil, err
	}
	report.CertificateIssued = certCount > 0

	report.CanDownloadCertificate = report.IsCourseCompleted &&
		report.MeetsAttendanceRequirement &&
		len(report.PendingReviews) == 0 &&
		report.SurveyOrEvalCompleted

	return report, nil
}

package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletionStats is the snapshot persisted on a certificate at issue time.
type CompletionStats struct {
	TotalDays            int        `json:"total_days"`
	AttendedDays         int        `json:"attended_days"`
	AttendancePercentage int        `json:"attendance_percentage"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
}

// Certificate is issued once per (student, course) and afterwards only
// mutated for download bookkeeping.
type Certificate struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_certificate_student_course;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_certificate_student_course;not null"`

	CertificateNumber string `json:"certificate_number" gorm:"unique;not null"`
	VerificationCode  string `json:"verification_code" gorm:"index;not null"`

	// Denormalized for rendering without joins
	StudentName string `json:"student_name"`
	CourseTitle string `json:"course_title"`
	TeacherName string `json:"teacher_name"`

	CompletionStats  datatypes.JSON `json:"completion_stats"`
	DownloadCount    int            `json:"download_count" gorm:"default:0"`
	LastDownloadedAt *time.Time     `json:"last_downloaded_at"`
	IsValid          bool           `json:"is_valid" gorm:"default:true"`
	IsDeleted        bool           `json:"-" gorm:"default:false"`
}

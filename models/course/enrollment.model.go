package course

import "gorm.io/gorm"

// Enrollment links a student to a course. Progress and DaysCompleted are
// derived from attendance records and never written directly by handlers.
type Enrollment struct {
	gorm.Model
	StudentID     uint   `json:"student_id" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	CourseID      uint   `json:"course_id" gorm:"uniqueIndex:idx_enrollment_student_course;not null"`
	Status        string `json:"status" gorm:"default:'pending'"` // pending, approved, rejected
	Progress      int    `json:"progress" gorm:"default:0"`       // 0-100
	DaysCompleted int    `json:"days_completed" gorm:"default:0"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}

const (
	EnrollmentStatusPending  = "pending"
	EnrollmentStatusApproved = "approved"
	EnrollmentStatusRejected = "rejected"
)

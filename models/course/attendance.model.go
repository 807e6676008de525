package course

import (
	"time"

	"gorm.io/gorm"
)

// Attendance records a student's presence for one course day. The
// (student, course, day) triple is unique; marking the same day again
// updates the existing row.
type Attendance struct {
	gorm.Model
	StudentID uint      `json:"student_id" gorm:"uniqueIndex:idx_attendance_student_course_day;not null"`
	CourseID  uint      `json:"course_id" gorm:"uniqueIndex:idx_attendance_student_course_day;not null"`
	DayNumber int       `json:"day_number" gorm:"uniqueIndex:idx_attendance_student_course_day;not null"`
	Status    string    `json:"status" gorm:"default:'absent'"` // present, absent
	MarkedBy  uint      `json:"marked_by"`
	MarkedAt  time.Time `json:"marked_at"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

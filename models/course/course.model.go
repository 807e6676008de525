package course

import (
	"time"

	"gorm.io/gorm"
)

// Course is a day-structured training course authored by a teacher.
type Course struct {
	gorm.Model
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	TeacherID         uint      `json:"teacher_id" gorm:"index;not null"`
	TotalDays         int       `json:"total_days" gorm:"default:1"` // 1-30
	Status            string    `json:"status" gorm:"default:'draft'"` // draft, active, completed
	EnrollmentEnabled bool      `json:"enrollment_enabled" gorm:"default:true"`
	Sections          []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}

const (
	CourseStatusDraft     = "draft"
	CourseStatusActive    = "active"
	CourseStatusCompleted = "completed"
)

// Section is one scheduled day within a course.
type Section struct {
	gorm.Model
	CourseID    uint         `json:"course_id" gorm:"uniqueIndex:idx_section_course_day;not null"`
	DayNumber   int          `json:"day_number" gorm:"uniqueIndex:idx_section_course_day;not null"`
	Heading     string       `json:"heading"`
	Description string       `json:"description"`
	Date        *time.Time   `json:"date"`
	Completed   bool         `json:"completed" gorm:"default:false"`
	CompletedBy *uint        `json:"completed_by"`
	CompletedAt *time.Time   `json:"completed_at"`
	SubSections []SubSection `json:"sub_sections,omitempty" gorm:"foreignKey:SectionID"`
	IsDeleted   bool         `json:"-" gorm:"default:false"`
}

// SubSection is a single topic within a day's section.
type SubSection struct {
	gorm.Model
	SectionID  uint   `json:"section_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

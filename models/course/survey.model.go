package course

import "gorm.io/gorm"

// CourseSurvey is a student's end-of-course feedback with an attendance
// snapshot taken at submission time.
type CourseSurvey struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_survey_student_course;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_survey_student_course;not null"`

	// 1-5 ratings
	ContentRating      int `json:"content_rating" gorm:"not null"`
	InstructorRating   int `json:"instructor_rating" gorm:"not null"`
	MaterialRating     int `json:"material_rating" gorm:"not null"`
	OrganizationRating int `json:"organization_rating" gorm:"not null"`
	OverallRating      int `json:"overall_rating" gorm:"not null"`

	Difficulty     string `json:"difficulty"` // too_easy, just_right, too_hard
	LikedMost      string `json:"liked_most" gorm:"type:text"`
	Improvements   string `json:"improvements" gorm:"type:text"`
	WouldRecommend bool   `json:"would_recommend"`

	// Attendance snapshot at submission time
	TotalDays            int `json:"total_days"`
	AttendedDays         int `json:"attended_days"`
	AttendancePercentage int `json:"attendance_percentage"`

	CertificateIssued bool `json:"certificate_issued" gorm:"default:false"`
	IsDeleted         bool `json:"-" gorm:"default:false"`
}

const (
	DifficultyTooEasy   = "too_easy"
	DifficultyJustRight = "just_right"
	DifficultyTooHard   = "too_hard"
)

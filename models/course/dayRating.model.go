package course

import "gorm.io/gorm"

// DayRating is a student's 1-5 rating of a single completed course day.
// One rating per student per day.
type DayRating struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"uniqueIndex:idx_rating_student_course_day;not null"`
	CourseID  uint   `json:"course_id" gorm:"uniqueIndex:idx_rating_student_course_day;not null"`
	DayNumber int    `json:"day_number" gorm:"uniqueIndex:idx_rating_student_course_day;not null"`
	Rating    int    `json:"rating" gorm:"not null"` // 1-5
	Comment   string `json:"comment" gorm:"type:text"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

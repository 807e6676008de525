package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvaluationQuestionCount is the fixed number of questions (q1..q20) an
// evaluation must answer.
const EvaluationQuestionCount = 20

// Evaluation is the fixed 20-question end-of-course questionnaire. Either
// an Evaluation or a CourseSurvey satisfies the certificate feedback gate.
type Evaluation struct {
	gorm.Model
	StudentID uint              `json:"student_id" gorm:"uniqueIndex:idx_evaluation_student_course;not null"`
	CourseID  uint              `json:"course_id" gorm:"uniqueIndex:idx_evaluation_student_course;not null"`
	Answers   datatypes.JSONMap `json:"answers"` // q1..q20, all required
	IsDeleted bool              `json:"-" gorm:"default:false"`
}

package models

import (
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Authorization checks switch on
// it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-" gorm:"not null"`
	Role         Role   `json:"role" gorm:"default:'student'"`
	ProfileImage string `json:"profile_image" gorm:"default:''"`

	// Student profile
	RollNumber string `json:"roll_number" gorm:"default:''"`
	Branch     string `json:"branch" gorm:"default:''"`
	Section    string `json:"section" gorm:"default:''"`

	// Teacher profile; teachers need admin verification before they can
	// author courses.
	Department      string `json:"department" gorm:"default:''"`
	Designation     string `json:"designation" gorm:"default:''"`
	VerifiedTeacher bool   `json:"verified_teacher" gorm:"default:false"`

	IsDeleted bool `json:"-" gorm:"default:false"`
}

package models

import "gorm.io/gorm"

// Profile roles
const (
	ProfileRoleInstructor = "instructor"
	ProfileRoleStudent    = "student"
)

// Profile is a one-to-one extension of User
type Profile struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"` // at most one profile per user
	Name   string `json:"name"`
	Role   string `json:"role" gorm:"default:'student'"` // instructor, student
	Bio    string `json:"bio" gorm:"size:200"`
	Avatar string `json:"avatar"` // stored file reference, optional
	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

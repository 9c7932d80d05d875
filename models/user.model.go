package models

import "gorm.io/gorm"

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'USER'"`
	// IsActive stays false until the activation link is visited; login is
	// refused while it is false.
	IsActive bool `json:"is_active" gorm:"default:false"`
}

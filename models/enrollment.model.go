package models

import "gorm.io/gorm"

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCanceled  = "canceled"
)

// Enrollment links one user to one course. The composite unique index is the
// source of truth for the one-enrollment-per-(user, course) rule; concurrent
// inserts for the same pair lose with a duplicate-key error rather than
// producing a second row.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Status   string `json:"status" gorm:"default:'active'"` // active, completed, canceled
	Progress int    `json:"progress" gorm:"default:0"`      // completion percentage (0-100)
	User     User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Course   Course `json:"course" gorm:"constraint:OnDelete:CASCADE"`
}

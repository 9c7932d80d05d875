package models

import "gorm.io/gorm"

// Comment is a course discussion entry; Rating is nil for plain comments and
// 1..5 when the comment doubles as a review.
type Comment struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Body     string `json:"body" gorm:"type:text;not null"`
	Rating   *int   `json:"rating"`
	User     User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Course   Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

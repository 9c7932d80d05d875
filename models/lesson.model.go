package models

import "gorm.io/gorm"

// Lesson belongs to exactly one course; removed together with the course
type Lesson struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text"`
	VideoURL string `json:"video_url"`
	Position int    `json:"position" gorm:"default:1"` // ordering within the course
	Course   Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

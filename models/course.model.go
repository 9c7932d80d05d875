package models

import "gorm.io/gorm"

// Course represents a learning course owned by its instructor
type Course struct {
	gorm.Model
	OwnerID          uint     `json:"owner_id" gorm:"index;not null"` // immutable after creation
	Title            string   `json:"title" gorm:"not null"`
	Subtitle         string   `json:"subtitle"`
	Description      string   `json:"description" gorm:"type:text"`
	Level            string   `json:"level"`
	Language         string   `json:"language" gorm:"default:'es'"`
	Category         string   `json:"category" gorm:"default:'Tecnología'"`
	WhatYouWillLearn string   `json:"what_you_will_learn" gorm:"type:text"`
	Requirements     string   `json:"requirements" gorm:"type:text"`
	TargetAudience   string   `json:"target_audience" gorm:"type:text"`
	Price            float64  `json:"price" gorm:"default:0"` // non-negative
	DurationHours    float64  `json:"duration_hours" gorm:"default:1"`
	IsPublished      bool     `json:"is_published" gorm:"default:false"`
	Owner            User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Lessons          []Lesson `json:"lessons,omitempty"`
}

package database

import (
	"lms/models"

	"gorm.io/gorm"
)

// Deletes are permanent so the enrollment unique index never collides with a
// leftover soft-deleted row.

// DeleteCourseCascade removes a course together with its lessons, comments and
// enrollments in one transaction.
func DeleteCourseCascade(db *gorm.DB, courseID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", courseID).Delete(&models.Course{}).Error
	})
}

// DeleteUserCascade removes a user together with their profile, enrollments
// and comments. Courses the user owns are cascaded as well, since a course
// cannot outlive its owner.
func DeleteUserCascade(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var courseIDs []uint
		if err := tx.Model(&models.Course{}).Where("owner_id = ?", userID).Pluck("id", &courseIDs).Error; err != nil {
			return err
		}
		for _, courseID := range courseIDs {
			if err := DeleteCourseCascade(tx, courseID); err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", userID).Delete(&models.User{}).Error
	})
}

package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists courses. Public; supports level/language filters and
// free-text search on title and description.
func GetAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{})

	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if language := c.Query("language"); language != "" {
		db = db.Where("language = ?", language)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one course with its lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// CreateCourse creates a course owned by the requester. Ownership is
// server-assigned and cannot be supplied by the client.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		OwnerID:          userID,
		Title:            reqData.Title,
		Subtitle:         reqData.Subtitle,
		Description:      reqData.Description,
		Level:            reqData.Level,
		Language:         reqData.Language,
		Category:         reqData.Category,
		WhatYouWillLearn: reqData.WhatYouWillLearn,
		Requirements:     reqData.Requirements,
		TargetAudience:   reqData.TargetAudience,
		Price:            reqData.Price,
		DurationHours:    reqData.DurationHours,
		IsPublished:      reqData.IsPublished,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates a course. Owner only; the owner field itself is
// immutable through the API.
func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.OwnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own courses!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Subtitle != nil {
		course.Subtitle = *reqData.Subtitle
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.Language != nil {
		course.Language = *reqData.Language
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.WhatYouWillLearn != nil {
		course.WhatYouWillLearn = *reqData.WhatYouWillLearn
	}
	if reqData.Requirements != nil {
		course.Requirements = *reqData.Requirements
	}
	if reqData.TargetAudience != nil {
		course.TargetAudience = *reqData.TargetAudience
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.DurationHours != nil {
		course.DurationHours = *reqData.DurationHours
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course and cascades its lessons, comments and
// enrollments. Owner only.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.OwnerID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own courses!", nil)
	}

	if err := database.DeleteCourseCascade(database.Database.Db, course.ID); err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

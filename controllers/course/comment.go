package controllers

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetComments lists comments, newest first. Public; filterable by course.
func GetComments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Comment{})

	if courseID := c.QueryInt("course", 0); courseID > 0 {
		db = db.Where("course_id = ?", courseID)
	}

	var total int64
	db.Count(&total)

	var comments []models.Comment
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", fiber.Map{
		"comments": comments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateComment adds a comment to a course. The author is always the
// authenticated requester; the rating bounds were already checked by the
// validator.
func CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*courseValidator.CreateCommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	comment := models.Comment{
		CourseID: reqData.CourseID,
		UserID:   userID,
		Body:     reqData.Body,
		Rating:   reqData.Rating,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		log.Printf("Error creating comment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

// UpdateComment edits a comment. Author only.
func UpdateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentID, ok := c.Locals("commentID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	reqData, ok := c.Locals("validatedCommentUpdate").(*courseValidator.UpdateCommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var comment models.Comment
	if err := database.Database.Db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own comments!", nil)
	}

	if reqData.Body != nil {
		comment.Body = *reqData.Body
	}
	if reqData.Rating != nil {
		comment.Rating = reqData.Rating
	}

	if err := database.Database.Db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

// DeleteComment removes a comment. Author only.
func DeleteComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentID, ok := c.Locals("commentID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var comment models.Comment
	if err := database.Database.Db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own comments!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}

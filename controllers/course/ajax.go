package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// courseSummary is the trimmed course shape served to client-side renderers
type courseSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Language    string `json:"language"`
}

// ListCoursesAjax returns every course's id/title/description/level/language
// for client-side rendering.
func ListCoursesAjax(c *fiber.Ctx) error {
	var courses []courseSummary
	if err := database.Database.Db.Model(&models.Course{}).
		Select("id", "title", "description", "level", "language").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// EnrollAjax is the programmatic enroll endpoint. The router chain already
// checked the session and the X-Requested-With marker header; on success only
// the course title is returned.
func EnrollAjax(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, status, errMsg := enroll(database.Database.Db, userID, reqData.CourseID)
	if errMsg != "" {
		return middleware.JsonResponse(c, status, false, errMsg, nil)
	}

	return middleware.JsonResponse(c, status, true, "Enrolled in course successfully!", fiber.Map{
		"course_title": enrollment.Course.Title,
	})
}

package courseValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=255"`
	Subtitle         string  `json:"subtitle" validate:"max=255"`
	Description      string  `json:"description" validate:"required,min=5"`
	Level            string  `json:"level" validate:"max=50"`
	Language         string  `json:"language" validate:"max=50"`
	Category         string  `json:"category" validate:"max=100"`
	WhatYouWillLearn string  `json:"what_you_will_learn"`
	Requirements     string  `json:"requirements"`
	TargetAudience   string  `json:"target_audience"`
	Price            float64 `json:"price" validate:"gte=0"`
	DurationHours    float64 `json:"duration_hours" validate:"gte=0"`
	IsPublished      bool    `json:"is_published"`
}

type UpdateCourseRequest struct {
	Title            *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Subtitle         *string  `json:"subtitle" validate:"omitempty,max=255"`
	Description      *string  `json:"description" validate:"omitempty,min=5"`
	Level            *string  `json:"level" validate:"omitempty,max=50"`
	Language         *string  `json:"language" validate:"omitempty,max=50"`
	Category         *string  `json:"category" validate:"omitempty,max=100"`
	WhatYouWillLearn *string  `json:"what_you_will_learn"`
	Requirements     *string  `json:"requirements"`
	TargetAudience   *string  `json:"target_audience"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	DurationHours    *float64 `json:"duration_hours" validate:"omitempty,gte=0"`
	IsPublished      *bool    `json:"is_published"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

package courseValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// Rating is optional; when present it must sit in the closed range [1,5].
// An out-of-range value is a field-level validation failure, never clamped.
type CreateCommentRequest struct {
	CourseID uint   `json:"course_id" validate:"required,gt=0"`
	Body     string `json:"body" validate:"required,min=1"`
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type UpdateCommentRequest struct {
	Body   *string `json:"body" validate:"omitempty,min=1"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCommentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

func UpdateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCommentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedCommentUpdate", reqData)
		return c.Next()
	}
}

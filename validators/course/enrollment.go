package courseValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseID uint `json:"course_id" validate:"required,gt=0"`
}

type UpdateEnrollmentRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=active completed canceled"`
	Progress *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

// RequireAjaxHeader rejects programmatic requests that do not carry the
// X-Requested-With marker header.
func RequireAjaxHeader() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Requested-With") != "XMLHttpRequest" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing X-Requested-With header!", nil)
		}
		return c.Next()
	}
}

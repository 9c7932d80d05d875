package profileValidator

import (
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
	Role string `json:"role" validate:"required,oneof=instructor student"`
	Bio  string `json:"bio" validate:"max=200"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=150"`
	Role *string `json:"role" validate:"omitempty,oneof=instructor student"`
	Bio  *string `json:"bio" validate:"omitempty,max=200"`
}

func CreateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}

package profileRoutes

import (
	profileControllers "lms/controllers/profile"
	"lms/middleware"
	"lms/validators"
	profileValidators "lms/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/profiles")

	profileGroup.Get("/", middleware.JWTMiddleware, profileControllers.GetProfiles)
	profileGroup.Get("/:id", middleware.JWTMiddleware, validators.IDParam("id", "profileID"), profileControllers.GetProfile)
	profileGroup.Post("/", middleware.JWTMiddleware, profileValidators.CreateProfile(), profileControllers.CreateProfile)
	profileGroup.Put("/:id", middleware.JWTMiddleware, validators.IDParam("id", "profileID"), profileValidators.UpdateProfile(), profileControllers.UpdateProfile)
	profileGroup.Delete("/:id", middleware.JWTMiddleware, validators.IDParam("id", "profileID"), profileControllers.DeleteProfile)
	profileGroup.Put("/:id/avatar", middleware.JWTMiddleware, validators.IDParam("id", "profileID"), profileControllers.UploadAvatar)
}

package userRoutes

import (
	userControllers "lms/controllers/user"
	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	// Admin-only read access
	userGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly, userControllers.GetUsers)
	userGroup.Get("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.IDParam("id", "targetUserID"), userControllers.GetUser)
}

package userRoutes

import (
	courseControllers "skillforge/controllers/course"
	"skillforge/controllers/userControllers"
	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and per-user listing routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Post("/profile/picture", middleware.JWTMiddleware, userControllers.UploadProfilePicture)

	userGroup.Get("/enrollments", middleware.JWTMiddleware, courseControllers.GetMyEnrollments)
}

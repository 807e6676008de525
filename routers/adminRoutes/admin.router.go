package adminRoutes

import (
	adminController "skillforge/controllers/admin"
	"skillforge/middleware"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up operator-only routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", adminController.GetUsers)
	adminGroup.Post("/teacher/:id/verify", adminController.VerifyTeacher)
	adminGroup.Post("/teacher/:id/revoke", adminController.RevokeTeacher)
	adminGroup.Get("/courses", adminController.GetAllCourses)
}

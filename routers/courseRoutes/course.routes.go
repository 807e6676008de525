package courseRoutes

import (
	controllers "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	validators "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Browsing
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetActiveCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent),
		validators.EnrollCourse(), controllers.RequestEnrollment)

	// Day ratings and end-of-course feedback
	courseGroup.Post("/:id/day/:day/rating", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent),
		validators.SubmitDayRating(), controllers.SubmitDayRating)
	courseGroup.Post("/:id/evaluation", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent),
		validators.SubmitEvaluation(), controllers.SubmitEvaluation)
}

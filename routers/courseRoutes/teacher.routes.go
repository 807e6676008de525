package courseRoutes

import (
	controllers "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	validators "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupTeacherCourseRoutes sets up course authoring and lifecycle routes
func SetupTeacherCourseRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher/course",
		middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher, models.RoleAdmin))

	// Course CRUD
	teacherGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	teacherGroup.Get("/list", controllers.GetTeacherCourses)
	teacherGroup.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	teacherGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)

	// Lifecycle; completing the course requires every day to be completed
	teacherGroup.Post("/:id/complete", validators.CourseID(), controllers.MarkCourseCompleted)

	// Per-day sections
	teacherGroup.Put("/:id/section/:day", validators.UpdateSection(), controllers.UpdateSection)

	// Enrollment review
	teacherGroup.Get("/:id/enrollments", validators.CourseID(), controllers.GetCourseEnrollments)
	teacherGroup.Post("/enrollment/:enrollmentId/approve", validators.EnrollmentAction(), controllers.ApproveEnrollment)
	teacherGroup.Post("/enrollment/:enrollmentId/reject", validators.EnrollmentAction(), controllers.RejectEnrollment)

	// Feedback visibility
	teacherGroup.Get("/:id/ratings", validators.CourseID(), controllers.GetCourseDayRatings)
}

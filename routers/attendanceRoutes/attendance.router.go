package attendanceRoutes

import (
	controllers "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	validators "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up attendance marking and day completion routes
func SetupAttendanceRoutes(app *fiber.App) {
	attendanceGroup := app.Group("/attendance", middleware.JWTMiddleware)

	teacherOnly := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)

	// Marking triggers the progress recompute for the affected student
	attendanceGroup.Post("/mark", teacherOnly, validators.MarkAttendance(), controllers.MarkAttendance)
	attendanceGroup.Get("/course/:id", teacherOnly, validators.CourseID(), controllers.GetCourseAttendance)

	// Day completion fans the recompute out to every approved enrollment
	attendanceGroup.Post("/course/:id/day/:day/complete", teacherOnly, validators.CourseDay(), controllers.CompleteDay)
	attendanceGroup.Post("/course/:id/day/:day/uncomplete", teacherOnly, validators.CourseDay(), controllers.UncompleteDay)

	// Students can see their own record
	attendanceGroup.Get("/my/:id", middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.GetMyAttendance)
}

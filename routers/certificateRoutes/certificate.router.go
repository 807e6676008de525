package certificateRoutes

import (
	certificateController "skillforge/controllers/certificate"
	courseControllers "skillforge/controllers/course"
	"skillforge/middleware"
	"skillforge/models"
	certificateValidator "skillforge/validators/certificate"
	courseValidator "skillforge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up eligibility, issuance and verification routes
func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/certificates")

	studentOnly := middleware.RequireRole(models.RoleStudent)

	certGroup.Get("/eligibility/:courseId", middleware.JWTMiddleware, studentOnly,
		certificateValidator.CourseID(), certificateController.GetEligibility)
	certGroup.Post("/generate/:courseId", middleware.JWTMiddleware, studentOnly,
		certificateValidator.CourseID(), certificateController.GenerateCertificate)
	certGroup.Get("/my", middleware.JWTMiddleware, studentOnly, certificateController.GetMyCertificates)

	// End-of-course survey satisfies the feedback gate
	certGroup.Post("/survey/:courseId", middleware.JWTMiddleware, studentOnly,
		courseValidator.SubmitSurvey(), courseControllers.SubmitSurvey)

	// Public verification by code, no token required
	certGroup.Get("/verify/:code", certificateValidator.VerificationCode(), certificateController.VerifyCertificate)
}

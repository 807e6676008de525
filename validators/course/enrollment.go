package courseValidator

import (
	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the :id route param for enrollment requests.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollmentAction validates the :enrollmentId route param for
// approve/reject operations.
func EnrollmentAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := paramInt(c, "enrollmentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

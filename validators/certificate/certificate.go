package certificateValidator

import (
	"strconv"
	"strings"

	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :courseId route param.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(raw)
		if raw == "" || err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// VerificationCode validates the :code route param of the public
// verification endpoint.
func VerificationCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
		if len(code) < 12 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code!", nil)
		}

		c.Locals("verificationCode", code)
		return c.Next()
	}
}

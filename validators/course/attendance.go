package courseValidator

import (
	"skillforge/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkAttendanceRequest is the validated attendance payload.
type MarkAttendanceRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	CourseID  uint   `json:"course_id" validate:"required"`
	DayNumber int    `json:"day_number" validate:"required,min=1,max=30"`
	Status    string `json:"status" validate:"required,oneof=present absent"`
}

func MarkAttendance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkAttendanceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("validatedAttendance", reqData)
		return c.Next()
	}
}

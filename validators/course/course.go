package courseValidator

import (
	"strconv"
	"strings"
	"time"

	"skillforge/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest is the validated course-creation payload.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=5"`
	TotalDays   int    `json:"total_days" validate:"required,min=1,max=30"`
}

// UpdateCourseRequest carries optional course mutations.
type UpdateCourseRequest struct {
	Title             *string `json:"title" validate:"omitempty,min=3"`
	Description       *string `json:"description" validate:"omitempty,min=5"`
	Status            *string `json:"status" validate:"omitempty,oneof=draft active completed"`
	EnrollmentEnabled *bool   `json:"enrollment_enabled"`
}

// SubSectionPayload is one topic entry inside a section update.
type SubSectionPayload struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// UpdateSectionRequest carries optional per-day section mutations.
type UpdateSectionRequest struct {
	Heading     *string             `json:"heading"`
	Description *string             `json:"description"`
	Date        *time.Time          `json:"date"`
	SubSections []SubSectionPayload `json:"sub_sections" validate:"omitempty,dive"`
}

// paramInt parses a positive integer route parameter. The caller responds
// when ok is false.
func paramInt(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		day, ok := paramInt(c, "day")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid day number!", nil)
		}

		reqData := new(UpdateSectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("dayNumber", day)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route param and stashes it as courseID.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseDay validates the :id and :day route params.
func CourseDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		day, ok := paramInt(c, "day")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid day number!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("dayNumber", day)
		return c.Next()
	}
}

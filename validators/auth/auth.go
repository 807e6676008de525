package authValidator

import (
	"strings"

	"skillforge/middleware"
	"skillforge/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the validated signup payload.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`

	// Student profile
	RollNumber string `json:"roll_number"`
	Branch     string `json:"branch"`
	Section    string `json:"section"`

	// Teacher profile
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

// LoginRequest is the validated login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		errors := make(map[string]string)

		// Role-specific required profile fields
		switch models.Role(reqData.Role) {
		case models.RoleStudent:
			if strings.TrimSpace(reqData.RollNumber) == "" {
				errors["roll_number"] = "Roll number is required for students!"
			}
			if strings.TrimSpace(reqData.Branch) == "" {
				errors["branch"] = "Branch is required for students!"
			}
		case models.RoleTeacher:
			if strings.TrimSpace(reqData.Department) == "" {
				errors["department"] = "Department is required for teachers!"
			}
			if strings.TrimSpace(reqData.Designation) == "" {
				errors["designation"] = "Designation is required for teachers!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

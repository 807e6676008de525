package courseValidator

import (
	"fmt"
	"strings"

	"skillforge/middleware"
	courseModels "skillforge/models/course"

	"github.com/gofiber/fiber/v2"
)

// DayRatingRequest is the validated per-day rating payload.
type DayRatingRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// EvaluationRequest carries the fixed q1..q20 answer map.
type EvaluationRequest struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}

// SurveyRequest is the validated end-of-course survey payload.
type SurveyRequest struct {
	ContentRating      int    `json:"content_rating" validate:"required,min=1,max=5"`
	InstructorRating   int    `json:"instructor_rating" validate:"required,min=1,max=5"`
	MaterialRating     int    `json:"material_rating" validate:"required,min=1,max=5"`
	OrganizationRating int    `json:"organization_rating" validate:"required,min=1,max=5"`
	OverallRating      int    `json:"overall_rating" validate:"required,min=1,max=5"`
	Difficulty         string `json:"difficulty" validate:"required,oneof=too_easy just_right too_hard"`
	LikedMost          string `json:"liked_most" validate:"required,min=20"`
	Improvements       string `json:"improvements" validate:"required,min=20"`
	WouldRecommend     *bool  `json:"would_recommend" validate:"required"`
}

func SubmitDayRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		day, ok := paramInt(c, "day")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid day number!", nil)
		}

		reqData := new(DayRatingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("dayNumber", day)
		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

func SubmitEvaluation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(EvaluationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// All twenty answers must be present and non-empty.
		for i := 1; i <= courseModels.EvaluationQuestionCount; i++ {
			key := fmt.Sprintf("q%d", i)
			answer, exists := reqData.Answers[key]
			if !exists {
				errors[key] = "Answer is required!"
				continue
			}
			if s, isString := answer.(string); isString && strings.TrimSpace(s) == "" {
				errors[key] = "Answer must not be empty!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedEvaluation", reqData)
		return c.Next()
	}
}

// SubmitSurvey is mounted under /certificates/survey/:courseId.
func SubmitSurvey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := paramInt(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(SurveyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidatorErrorsToMap(err))
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedSurvey", reqData)
		return c.Next()
	}
}

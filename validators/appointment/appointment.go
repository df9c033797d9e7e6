package appointmentValidator

import (
	"strings"

	"pramaansetu/middleware"
	"pramaansetu/models"

	"github.com/gofiber/fiber/v2"
)

// Allot validator middleware
func Allot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID uint   `json:"userId"`
			Type   string `json:"type"`
			Date   string `json:"date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User id is required!"
		}

		if !models.IsCenterType(reqData.Type) {
			errors["type"] = "Type must be hospital or police!"
		}

		if strings.TrimSpace(reqData.Date) == "" {
			errors["date"] = "Date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Book validator middleware
func Book() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type string `json:"type"`
			Date string `json:"date"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Type) == "" {
			errors["type"] = "Type is required!"
		}

		if strings.TrimSpace(reqData.Date) == "" {
			errors["date"] = "Date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

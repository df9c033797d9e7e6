package adminValidator

import (
	"strings"

	"pramaansetu/middleware"
	"pramaansetu/models"

	"github.com/gofiber/fiber/v2"
)

// Review validator middleware
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type   string `json:"type"`
			Status string `json:"status"`
			Remark string `json:"remark"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if _, ok := models.ParseDocType(reqData.Type); !ok {
			errors["type"] = "Type must be medical, police or caste!"
		}

		if reqData.Status != models.CertApproved && reqData.Status != models.CertRejected {
			errors["status"] = "Status must be approved or rejected!"
		}

		// A rejection without a reason is useless to the candidate
		if reqData.Status == models.CertRejected && strings.TrimSpace(reqData.Remark) == "" {
			errors["remark"] = "Remark is required when rejecting!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/analytics"
)

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid period, expected week, month or quarter")
	}

	insights, err := handler.symptomService.Insights(period, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to build insights")
	}
	return c.JSON(insights)
}

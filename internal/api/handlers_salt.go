package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/services"
)

func (handler *Handler) GetSaltIntakes(c *fiber.Ctx) error {
	day, ok := parseDayQuery(c, "date", handler.location)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid date provided")
	}

	intakes, err := handler.saltService.ListIntakes(day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch salt intakes")
	}
	return c.JSON(intakes)
}

func (handler *Handler) GetSaltIntake(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid salt intake ID")
	}

	intake, err := handler.saltService.GetIntake(id)
	switch {
	case errors.Is(err, services.ErrSaltIntakeNotFound):
		return apiError(c, fiber.StatusNotFound, "Salt intake not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch salt intake")
	}
	return c.JSON(intake)
}

func (handler *Handler) CreateSaltIntake(c *fiber.Ctx) error {
	input := services.SaltIntakeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	intake, err := handler.saltService.CreateIntake(input, handler.now())
	if err != nil {
		if message, ok := validationProblems(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to add salt intake")
	}
	return c.Status(fiber.StatusCreated).JSON(intake)
}

func (handler *Handler) DeleteSaltIntake(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid salt intake ID")
	}

	err := handler.saltService.DeleteIntake(id)
	switch {
	case errors.Is(err, services.ErrSaltIntakeNotFound):
		return apiError(c, fiber.StatusNotFound, "Salt intake not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete salt intake")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetSaltRecommendation(c *fiber.Ctx) error {
	recommendation, err := handler.saltService.Recommendation()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch salt recommendation")
	}
	return c.JSON(recommendation)
}

func (handler *Handler) UpdateSaltRecommendation(c *fiber.Ctx) error {
	patch := services.SaltRecommendationPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	recommendation, err := handler.saltService.UpdateRecommendation(patch)
	if err != nil {
		if message, ok := validationProblems(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to update salt recommendation")
	}
	return c.JSON(recommendation)
}

func (handler *Handler) GetSaltStatus(c *fiber.Ctx) error {
	day, ok := parseDayQuery(c, "date", handler.location)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid date provided")
	}

	target := handler.now()
	if day != nil {
		target = *day
	}
	status, err := handler.saltService.DailyStatus(target, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch salt status")
	}
	return c.JSON(status)
}

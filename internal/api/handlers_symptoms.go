package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/models"
	"github.com/terraincognita07/potsy/internal/services"
)

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	symptoms, err := handler.symptomService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) GetSymptom(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid symptom ID")
	}

	symptom, err := handler.symptomService.Get(id)
	switch {
	case errors.Is(err, services.ErrSymptomNotFound):
		return apiError(c, fiber.StatusNotFound, "Symptom not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch symptom")
	}
	return c.JSON(symptom)
}

func (handler *Handler) GetSymptomsInRange(c *fiber.Ctx) error {
	symptoms, err := handler.symptomService.ListRange(c.Query("startDate"), c.Query("endDate"), handler.location)
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		return apiError(c, fiber.StatusBadRequest, "Invalid date range provided")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch symptoms by date range")
	}
	return c.JSON(symptoms)
}

// CreateSymptom answers 201 for a new record and 200 when the client id was
// already stored.
func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	input := models.SymptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	symptom, created, err := handler.symptomService.Create(input, handler.now())
	if err != nil {
		if message, ok := validationProblems(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to add symptom")
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(symptom)
	}
	return c.JSON(symptom)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid symptom ID")
	}

	err := handler.symptomService.Delete(id)
	switch {
	case errors.Is(err, services.ErrSymptomNotFound):
		return apiError(c, fiber.StatusNotFound, "Symptom not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete symptom")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

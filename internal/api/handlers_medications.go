package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/services"
)

func (handler *Handler) GetMedications(c *fiber.Ctx) error {
	medications, err := handler.medicationService.List(false)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch medications")
	}
	return c.JSON(medications)
}

func (handler *Handler) GetActiveMedications(c *fiber.Ctx) error {
	medications, err := handler.medicationService.List(true)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch active medications")
	}
	return c.JSON(medications)
}

func (handler *Handler) GetMedication(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid medication ID")
	}

	medication, err := handler.medicationService.Get(id)
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "Medication not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch medication")
	}
	return c.JSON(medication)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	medication, err := handler.medicationService.Create(input)
	if err != nil {
		if message, ok := validationProblems(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to add medication")
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid medication ID")
	}
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	medication, err := handler.medicationService.Update(id, input)
	if err != nil {
		if message, ok := validationProblems(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		if errors.Is(err, services.ErrMedicationNotFound) {
			return apiError(c, fiber.StatusNotFound, "Medication not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to update medication")
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Invalid medication ID")
	}

	err := handler.medicationService.Delete(id)
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "Medication not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete medication")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := handler.profileService.Get()
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		return apiError(c, fiber.StatusNotFound, "Profile not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	patch := services.ProfilePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	profile, err := handler.profileService.Update(patch)
	switch {
	case errors.Is(err, services.ErrProfileNameTooLong):
		return apiError(c, fiber.StatusBadRequest, validationMessage("name must be at most 64 characters"))
	case errors.Is(err, services.ErrProfileDatesInverted):
		return apiError(c, fiber.StatusBadRequest, validationMessage("diagnosisDate must not be before dateOfBirth"))
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to update user profile")
	}
	return c.JSON(profile)
}

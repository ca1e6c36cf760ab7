package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/services"
)

type catalogMessages struct {
	list   string
	create string
}

var (
	triggerMessages       = catalogMessages{list: "Failed to fetch triggers", create: "Failed to add trigger"}
	commonSymptomMessages = catalogMessages{list: "Failed to fetch common symptoms", create: "Failed to add common symptom"}
)

func (handler *Handler) GetTriggers(c *fiber.Ctx) error {
	return listCatalog(c, handler.triggerService, triggerMessages)
}

func (handler *Handler) CreateTrigger(c *fiber.Ctx) error {
	return createCatalogItem(c, handler.triggerService, triggerMessages)
}

func (handler *Handler) GetCommonSymptoms(c *fiber.Ctx) error {
	return listCatalog(c, handler.commonSymptomService, commonSymptomMessages)
}

func (handler *Handler) CreateCommonSymptom(c *fiber.Ctx) error {
	return createCatalogItem(c, handler.commonSymptomService, commonSymptomMessages)
}

func listCatalog(c *fiber.Ctx, catalog *services.CatalogService, messages catalogMessages) error {
	items, err := catalog.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, messages.list)
	}
	return c.JSON(items)
}

// createCatalogItem answers 201 for a new name and 200 with the stored entry
// when the name matches one case-insensitively.
func createCatalogItem(c *fiber.Ctx, catalog *services.CatalogService, messages catalogMessages) error {
	payload := catalogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, invalidBodyMessage)
	}

	item, created, err := catalog.Ensure(payload.Name)
	switch {
	case errors.Is(err, services.ErrInvalidCatalogName):
		return apiError(c, fiber.StatusBadRequest, validationMessage("name must be between 1 and 80 characters"))
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, messages.create)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(item)
	}
	return c.JSON(item)
}

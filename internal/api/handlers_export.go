package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/export"
	"github.com/terraincognita07/potsy/internal/models"
	"github.com/terraincognita07/potsy/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	symptoms, status, message := handler.loadExportSymptoms()
	if status != 0 {
		return apiError(c, status, message)
	}
	now := handler.now().In(handler.location)

	payload, err := export.CSV(symptoms, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to export symptoms")
	}

	setExportAttachmentHeaders(c, "text/csv", export.Filename(now, "csv"))
	return c.Send(payload)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	symptoms, status, message := handler.loadExportSymptoms()
	if status != 0 {
		return apiError(c, status, message)
	}
	now := handler.now().In(handler.location)

	serialized, err := json.MarshalIndent(symptomExport{
		ExportedAt: now.Format(time.RFC3339),
		Symptoms:   symptoms,
	}, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to export symptoms")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, export.Filename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) loadExportSymptoms() ([]models.Symptom, int, string) {
	symptoms, err := handler.exportService.LoadSymptoms()
	switch {
	case errors.Is(err, services.ErrNoExportData):
		return nil, fiber.StatusNotFound, "No symptoms to export"
	case err != nil:
		return nil, fiber.StatusInternalServerError, "Failed to export symptoms"
	}
	return symptoms, 0, ""
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

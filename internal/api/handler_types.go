package api

import (
	"time"

	"github.com/terraincognita07/potsy/internal/db"
	"github.com/terraincognita07/potsy/internal/models"
	"github.com/terraincognita07/potsy/internal/services"
)

type Handler struct {
	location *time.Location
	now      func() time.Time

	repositories         *db.Repositories
	symptomService       *services.SymptomService
	triggerService       *services.CatalogService
	commonSymptomService *services.CatalogService
	medicationService    *services.MedicationService
	profileService       *services.ProfileService
	saltService          *services.SaltService
	exportService        *services.ExportService
}

type catalogPayload struct {
	Name string `json:"name"`
}

type symptomExport struct {
	ExportedAt string           `json:"exportedAt"`
	Symptoms   []models.Symptom `json:"symptoms"`
}

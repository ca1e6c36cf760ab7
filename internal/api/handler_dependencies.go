package api

import (
	"github.com/terraincognita07/potsy/internal/db"
	"github.com/terraincognita07/potsy/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.symptomService = services.NewSymptomService(handler.repositories.Symptoms)
	handler.triggerService = services.NewCatalogService(handler.repositories.Triggers)
	handler.commonSymptomService = services.NewCatalogService(handler.repositories.CommonSymptoms)
	handler.medicationService = services.NewMedicationService(handler.repositories.Medications)
	handler.profileService = services.NewProfileService(handler.repositories.Profile)
	handler.saltService = services.NewSaltService(handler.repositories.Salt)
	handler.exportService = services.NewExportService(handler.repositories.Symptoms)
	return handler
}

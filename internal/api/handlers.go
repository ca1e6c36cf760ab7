package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

// NewHandler wires the services over database and seeds the trigger and
// common symptom catalogs when they are empty.
func NewHandler(database *gorm.DB, location *time.Location) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := (&Handler{
		location: location,
		now:      time.Now,
	}).withDependencies(database)

	if err := handler.triggerService.SeedDefaults(models.DefaultTriggers()); err != nil {
		return nil, fmt.Errorf("seed triggers: %w", err)
	}
	if err := handler.commonSymptomService.SeedDefaults(models.DefaultCommonSymptoms()); err != nil {
		return nil, fmt.Errorf("seed common symptoms: %w", err)
	}
	return handler, nil
}

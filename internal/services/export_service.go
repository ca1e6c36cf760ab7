package services

import (
	"errors"

	"github.com/terraincognita07/potsy/internal/models"
)

var ErrNoExportData = errors.New("no symptoms to export")

type ExportSymptomReader interface {
	List() ([]models.Symptom, error)
}

type ExportService struct {
	symptoms ExportSymptomReader
}

func NewExportService(symptoms ExportSymptomReader) *ExportService {
	return &ExportService{symptoms: symptoms}
}

// LoadSymptoms returns ErrNoExportData instead of an empty slice.
func (service *ExportService) LoadSymptoms() ([]models.Symptom, error) {
	symptoms, err := service.symptoms.List()
	if err != nil {
		return nil, err
	}
	if len(symptoms) == 0 {
		return nil, ErrNoExportData
	}
	return symptoms, nil
}

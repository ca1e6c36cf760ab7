package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSymptomNotFound     = errors.New("symptom not found")
	ErrListSymptomsFailed  = errors.New("list symptoms failed")
	ErrCreateSymptomFailed = errors.New("create symptom failed")
	ErrDeleteSymptomFailed = errors.New("delete symptom failed")
)

type SymptomRepository interface {
	List() ([]models.Symptom, error)
	ListBetween(from time.Time, to time.Time) ([]models.Symptom, error)
	FindByID(id uint) (models.Symptom, error)
	FindByClientID(clientID string) (models.Symptom, error)
	Create(symptom *models.Symptom) error
	Delete(id uint) (bool, error)
}

type SymptomService struct {
	symptoms SymptomRepository
}

func NewSymptomService(symptoms SymptomRepository) *SymptomService {
	return &SymptomService{symptoms: symptoms}
}

func (service *SymptomService) List() ([]models.Symptom, error) {
	symptoms, err := service.symptoms.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSymptomsFailed, err)
	}
	return symptoms, nil
}

func (service *SymptomService) Get(id uint) (models.Symptom, error) {
	symptom, err := service.symptoms.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Symptom{}, ErrSymptomNotFound
	}
	if err != nil {
		return models.Symptom{}, fmt.Errorf("%w: %v", ErrListSymptomsFailed, err)
	}
	return symptom, nil
}

func (service *SymptomService) ListRange(rawStart string, rawEnd string, location *time.Location) ([]models.Symptom, error) {
	from, to, err := ParseSymptomRange(rawStart, rawEnd, location)
	if err != nil {
		return nil, err
	}
	symptoms, err := service.symptoms.ListBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSymptomsFailed, err)
	}
	return symptoms, nil
}

// Create stores a validated symptom. When the input carries a client id the
// server already holds, the stored record is returned and created is false.
func (service *SymptomService) Create(input models.SymptomInput, now time.Time) (models.Symptom, bool, error) {
	if err := input.Validate(); err != nil {
		return models.Symptom{}, false, err
	}
	symptom := input.ToSymptom(now)

	if input.ClientID != "" {
		existing, found, err := service.findByClientID(symptom.ClientID)
		if err != nil {
			return models.Symptom{}, false, fmt.Errorf("%w: %v", ErrCreateSymptomFailed, err)
		}
		if found {
			return existing, false, nil
		}
	}

	if err := service.symptoms.Create(&symptom); err != nil {
		// a concurrent push of the same client id wins the unique index
		if existing, found, findErr := service.findByClientID(symptom.ClientID); findErr == nil && found {
			return existing, false, nil
		}
		return models.Symptom{}, false, fmt.Errorf("%w: %v", ErrCreateSymptomFailed, err)
	}
	return symptom, true, nil
}

func (service *SymptomService) Delete(id uint) error {
	deleted, err := service.symptoms.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteSymptomFailed, err)
	}
	if !deleted {
		return ErrSymptomNotFound
	}
	return nil
}

func (service *SymptomService) Insights(period analytics.Period, now time.Time, location *time.Location) (analytics.Insights, error) {
	symptoms, err := service.List()
	if err != nil {
		return analytics.Insights{}, err
	}
	return analytics.BuildInsights(symptoms, period, now, location)
}

func (service *SymptomService) findByClientID(clientID string) (models.Symptom, bool, error) {
	symptom, err := service.symptoms.FindByClientID(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Symptom{}, false, nil
	}
	if err != nil {
		return models.Symptom{}, false, err
	}
	return symptom, true, nil
}

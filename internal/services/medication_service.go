package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMedicationNotFound     = errors.New("medication not found")
	ErrListMedicationsFailed  = errors.New("list medications failed")
	ErrSaveMedicationFailed   = errors.New("save medication failed")
	ErrDeleteMedicationFailed = errors.New("delete medication failed")
)

type MedicationRepository interface {
	List() ([]models.Medication, error)
	ListActive() ([]models.Medication, error)
	FindByID(id uint) (models.Medication, error)
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	Delete(id uint) (bool, error)
}

type MedicationService struct {
	medications MedicationRepository
}

func NewMedicationService(medications MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications}
}

func (service *MedicationService) List(activeOnly bool) ([]models.Medication, error) {
	var (
		medications []models.Medication
		err         error
	)
	if activeOnly {
		medications, err = service.medications.ListActive()
	} else {
		medications, err = service.medications.List()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListMedicationsFailed, err)
	}
	return medications, nil
}

func (service *MedicationService) Get(id uint) (models.Medication, error) {
	medication, err := service.medications.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Medication{}, ErrMedicationNotFound
	}
	if err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrListMedicationsFailed, err)
	}
	return medication, nil
}

func (service *MedicationService) Create(input MedicationInput) (models.Medication, error) {
	medication := models.Medication{Active: true, ReminderTimes: []string{}}
	if err := input.applyTo(&medication); err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrSaveMedicationFailed, err)
	}
	return medication, nil
}

func (service *MedicationService) Update(id uint, input MedicationInput) (models.Medication, error) {
	medication, err := service.Get(id)
	if err != nil {
		return models.Medication{}, err
	}
	if err := input.applyTo(&medication); err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.Save(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("%w: %v", ErrSaveMedicationFailed, err)
	}
	return medication, nil
}

func (service *MedicationService) Delete(id uint) error {
	deleted, err := service.medications.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteMedicationFailed, err)
	}
	if !deleted {
		return ErrMedicationNotFound
	}
	return nil
}

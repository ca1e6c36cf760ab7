package db

import (
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) List() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) ListActive() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Where("active = ?", true).Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByID(id uint) (models.Medication, error) {
	medication := models.Medication{}
	if err := repo.database.First(&medication, id).Error; err != nil {
		return models.Medication{}, err
	}
	return medication, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

func (repo *MedicationRepository) Delete(id uint) (bool, error) {
	result := repo.database.Delete(&models.Medication{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package db

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) List() ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

// ListBetween is inclusive on both ends.
func (repo *SymptomRepository) ListBetween(from time.Time, to time.Time) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := repo.database.
		Where("date >= ? AND date <= ?", from.UTC(), to.UTC()).
		Order("date ASC, id ASC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) FindByID(id uint) (models.Symptom, error) {
	symptom := models.Symptom{}
	if err := repo.database.First(&symptom, id).Error; err != nil {
		return models.Symptom{}, err
	}
	return symptom, nil
}

func (repo *SymptomRepository) FindByClientID(clientID string) (models.Symptom, error) {
	symptom := models.Symptom{}
	if err := repo.database.Where("client_id = ?", clientID).First(&symptom).Error; err != nil {
		return models.Symptom{}, err
	}
	return symptom, nil
}

func (repo *SymptomRepository) Create(symptom *models.Symptom) error {
	return repo.database.Create(symptom).Error
}

// Delete reports whether a row was removed.
func (repo *SymptomRepository) Delete(id uint) (bool, error) {
	result := repo.database.Delete(&models.Symptom{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

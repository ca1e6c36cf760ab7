package db

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type SaltRepository struct {
	database *gorm.DB
}

func NewSaltRepository(database *gorm.DB) *SaltRepository {
	return &SaltRepository{database: database}
}

func (repo *SaltRepository) ListIntakes() ([]models.SaltIntake, error) {
	intakes := make([]models.SaltIntake, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

// ListIntakesInDay returns intakes in [dayStart, dayEnd).
func (repo *SaltRepository) ListIntakesInDay(dayStart time.Time, dayEnd time.Time) ([]models.SaltIntake, error) {
	intakes := make([]models.SaltIntake, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart.UTC(), dayEnd.UTC()).
		Order("date DESC, id DESC").
		Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

func (repo *SaltRepository) FindIntake(id uint) (models.SaltIntake, error) {
	intake := models.SaltIntake{}
	if err := repo.database.First(&intake, id).Error; err != nil {
		return models.SaltIntake{}, err
	}
	return intake, nil
}

func (repo *SaltRepository) CreateIntake(intake *models.SaltIntake) error {
	return repo.database.Create(intake).Error
}

func (repo *SaltRepository) DeleteIntake(id uint) (bool, error) {
	result := repo.database.Delete(&models.SaltIntake{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *SaltRepository) FindRecommendation() (models.SaltRecommendation, error) {
	recommendation := models.SaltRecommendation{}
	if err := repo.database.First(&recommendation, models.SaltRecommendationSingletonID).Error; err != nil {
		return models.SaltRecommendation{}, err
	}
	return recommendation, nil
}

func (repo *SaltRepository) SaveRecommendation(recommendation *models.SaltRecommendation) error {
	recommendation.ID = models.SaltRecommendationSingletonID
	return repo.database.Save(recommendation).Error
}

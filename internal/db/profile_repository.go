package db

import (
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Find() (models.UserProfile, error) {
	profile := models.UserProfile{}
	if err := repo.database.First(&profile, models.ProfileSingletonID).Error; err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	profile.ID = models.ProfileSingletonID
	return repo.database.Save(profile).Error
}

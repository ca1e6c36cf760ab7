package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

const maxProfileNameLength = 64

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrLoadProfileFailed    = errors.New("load profile failed")
	ErrUpdateProfileFailed  = errors.New("update profile failed")
	ErrProfileNameTooLong   = errors.New("profile name too long")
	ErrProfileDatesInverted = errors.New("profile diagnosis date before date of birth")
)

type ProfileRepository interface {
	Find() (models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type ProfilePatch struct {
	Name             *string    `json:"name"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Diagnosis        *string    `json:"diagnosis"`
	DiagnosisDate    *time.Time `json:"diagnosisDate"`
	Conditions       []string   `json:"conditions"`
	Physician        *string    `json:"physician"`
	EmergencyContact *string    `json:"emergencyContact"`
	Notes            *string    `json:"notes"`
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Get() (models.UserProfile, error) {
	profile, err := service.profiles.Find()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrLoadProfileFailed, err)
	}
	return profile, nil
}

// Update creates the profile on first use.
func (service *ProfileService) Update(patch ProfilePatch) (models.UserProfile, error) {
	profile, err := service.Get()
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return models.UserProfile{}, err
	}
	if profile.Conditions == nil {
		profile.Conditions = []string{}
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if utf8.RuneCountInString(name) > maxProfileNameLength {
			return models.UserProfile{}, ErrProfileNameTooLong
		}
		profile.Name = name
	}
	if patch.DateOfBirth != nil {
		dateOfBirth := patch.DateOfBirth.UTC()
		profile.DateOfBirth = &dateOfBirth
	}
	if patch.Diagnosis != nil {
		profile.Diagnosis = strings.TrimSpace(*patch.Diagnosis)
	}
	if patch.DiagnosisDate != nil {
		diagnosisDate := patch.DiagnosisDate.UTC()
		profile.DiagnosisDate = &diagnosisDate
	}
	if patch.Conditions != nil {
		profile.Conditions = models.CleanNames(patch.Conditions)
	}
	if patch.Physician != nil {
		profile.Physician = strings.TrimSpace(*patch.Physician)
	}
	if patch.EmergencyContact != nil {
		profile.EmergencyContact = strings.TrimSpace(*patch.EmergencyContact)
	}
	if patch.Notes != nil {
		profile.Notes = strings.TrimSpace(*patch.Notes)
	}

	if profile.DateOfBirth != nil && profile.DiagnosisDate != nil && profile.DiagnosisDate.Before(*profile.DateOfBirth) {
		return models.UserProfile{}, ErrProfileDatesInverted
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrUpdateProfileFailed, err)
	}
	return profile, nil
}

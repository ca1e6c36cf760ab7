package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/potsy/internal/analytics"
	"github.com/terraincognita07/potsy/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSaltIntakeNotFound           = errors.New("salt intake not found")
	ErrListSaltIntakesFailed        = errors.New("list salt intakes failed")
	ErrSaveSaltIntakeFailed         = errors.New("save salt intake failed")
	ErrDeleteSaltIntakeFailed       = errors.New("delete salt intake failed")
	ErrLoadSaltRecommendationFailed = errors.New("load salt recommendation failed")
	ErrSaveSaltRecommendationFailed = errors.New("save salt recommendation failed")
)

type SaltRepository interface {
	ListIntakes() ([]models.SaltIntake, error)
	ListIntakesInDay(dayStart time.Time, dayEnd time.Time) ([]models.SaltIntake, error)
	FindIntake(id uint) (models.SaltIntake, error)
	CreateIntake(intake *models.SaltIntake) error
	DeleteIntake(id uint) (bool, error)
	FindRecommendation() (models.SaltRecommendation, error)
	SaveRecommendation(recommendation *models.SaltRecommendation) error
}

type SaltIntakeInput struct {
	Amount *float64   `json:"amount"`
	Source string     `json:"source"`
	Date   *time.Time `json:"date"`
	Notes  *string    `json:"notes"`
}

type SaltRecommendationPatch struct {
	DailyTarget        *float64 `json:"dailyTarget"`
	MaxSingleDose      *float64 `json:"maxSingleDose"`
	MinDailyAmount     *float64 `json:"minDailyAmount"`
	RecommendedSources []string `json:"recommendedSources"`
	DoctorNotes        *string  `json:"doctorNotes"`
}

type SaltDayStatus struct {
	Date           string                    `json:"date"`
	Total          float64                   `json:"total"`
	Status         analytics.SaltStatus      `json:"status"`
	Recommendation models.SaltRecommendation `json:"recommendation"`
}

type SaltService struct {
	salt SaltRepository
}

func NewSaltService(salt SaltRepository) *SaltService {
	return &SaltService{salt: salt}
}

// ListIntakes returns all intakes, or those on day when it is set.
func (service *SaltService) ListIntakes(day *time.Time, location *time.Location) ([]models.SaltIntake, error) {
	var (
		intakes []models.SaltIntake
		err     error
	)
	if day != nil {
		dayStart := analytics.DateAtLocation(*day, location)
		intakes, err = service.salt.ListIntakesInDay(dayStart, dayStart.AddDate(0, 0, 1))
	} else {
		intakes, err = service.salt.ListIntakes()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListSaltIntakesFailed, err)
	}
	return intakes, nil
}

func (service *SaltService) GetIntake(id uint) (models.SaltIntake, error) {
	intake, err := service.salt.FindIntake(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SaltIntake{}, ErrSaltIntakeNotFound
	}
	if err != nil {
		return models.SaltIntake{}, fmt.Errorf("%w: %v", ErrListSaltIntakesFailed, err)
	}
	return intake, nil
}

func (service *SaltService) CreateIntake(input SaltIntakeInput, now time.Time) (models.SaltIntake, error) {
	problems := make([]string, 0)
	switch {
	case input.Amount == nil:
		problems = append(problems, "amount is required")
	case !inRange(*input.Amount, 0.1, 10):
		problems = append(problems, "amount must be between 0.1g and 10g")
	}
	source := strings.TrimSpace(input.Source)
	if source == "" {
		problems = append(problems, "source is required")
	}
	if len(problems) > 0 {
		return models.SaltIntake{}, &models.ValidationError{Problems: problems}
	}

	intake := models.SaltIntake{Amount: *input.Amount, Source: source, Date: now.UTC()}
	if input.Date != nil && !input.Date.IsZero() {
		intake.Date = input.Date.UTC()
	}
	if input.Notes != nil {
		if notes := strings.TrimSpace(*input.Notes); notes != "" {
			intake.Notes = &notes
		}
	}

	if err := service.salt.CreateIntake(&intake); err != nil {
		return models.SaltIntake{}, fmt.Errorf("%w: %v", ErrSaveSaltIntakeFailed, err)
	}
	return intake, nil
}

func (service *SaltService) DeleteIntake(id uint) error {
	deleted, err := service.salt.DeleteIntake(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteSaltIntakeFailed, err)
	}
	if !deleted {
		return ErrSaltIntakeNotFound
	}
	return nil
}

// Recommendation falls back to defaults until the first update.
func (service *SaltService) Recommendation() (models.SaltRecommendation, error) {
	recommendation, err := service.salt.FindRecommendation()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSaltRecommendation(), nil
	}
	if err != nil {
		return models.SaltRecommendation{}, fmt.Errorf("%w: %v", ErrLoadSaltRecommendationFailed, err)
	}
	if recommendation.RecommendedSources == nil {
		recommendation.RecommendedSources = []string{}
	}
	return recommendation, nil
}

func (service *SaltService) UpdateRecommendation(patch SaltRecommendationPatch) (models.SaltRecommendation, error) {
	recommendation, err := service.Recommendation()
	if err != nil {
		return models.SaltRecommendation{}, err
	}

	problems := make([]string, 0)
	if patch.DailyTarget != nil {
		if !inRange(*patch.DailyTarget, 1, 10) {
			problems = append(problems, "dailyTarget must be between 1g and 10g")
		}
		recommendation.DailyTarget = *patch.DailyTarget
	}
	if patch.MaxSingleDose != nil {
		if !inRange(*patch.MaxSingleDose, 0.1, 5) {
			problems = append(problems, "maxSingleDose must be between 0.1g and 5g")
		}
		recommendation.MaxSingleDose = *patch.MaxSingleDose
	}
	if patch.MinDailyAmount != nil {
		if !inRange(*patch.MinDailyAmount, 0.5, 5) {
			problems = append(problems, "minDailyAmount must be between 0.5g and 5g")
		}
		recommendation.MinDailyAmount = *patch.MinDailyAmount
	}
	if len(problems) > 0 {
		return models.SaltRecommendation{}, &models.ValidationError{Problems: problems}
	}
	if patch.RecommendedSources != nil {
		recommendation.RecommendedSources = models.CleanNames(patch.RecommendedSources)
	}
	if patch.DoctorNotes != nil {
		recommendation.DoctorNotes = strings.TrimSpace(*patch.DoctorNotes)
	}

	if err := service.salt.SaveRecommendation(&recommendation); err != nil {
		return models.SaltRecommendation{}, fmt.Errorf("%w: %v", ErrSaveSaltRecommendationFailed, err)
	}
	return recommendation, nil
}

func (service *SaltService) DailyStatus(day time.Time, location *time.Location) (SaltDayStatus, error) {
	intakes, err := service.ListIntakes(&day, location)
	if err != nil {
		return SaltDayStatus{}, err
	}
	recommendation, err := service.Recommendation()
	if err != nil {
		return SaltDayStatus{}, err
	}

	total := analytics.SaltTotalForDay(intakes, day, location)
	return SaltDayStatus{
		Date:           analytics.DateAtLocation(day, location).Format(time.DateOnly),
		Total:          math.Round(total*100) / 100,
		Status:         analytics.SaltDailyStatus(total, recommendation),
		Recommendation: recommendation,
	}, nil
}

func inRange(value float64, minimum float64, maximum float64) bool {
	return !math.IsNaN(value) && value >= minimum && value <= maximum
}

package models

import "time"

const SaltRecommendationSingletonID = 1

const (
	DefaultSaltDailyTarget    = 3.0
	DefaultSaltMaxSingleDose  = 1.0
	DefaultSaltMinDailyAmount = 2.0
)

type SaltIntake struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Source    string    `gorm:"not null" json:"source"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type SaltRecommendation struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	DailyTarget        float64   `gorm:"not null" json:"dailyTarget"`
	MaxSingleDose      float64   `gorm:"not null" json:"maxSingleDose"`
	MinDailyAmount     float64   `gorm:"not null" json:"minDailyAmount"`
	RecommendedSources []string  `gorm:"serializer:json" json:"recommendedSources"`
	DoctorNotes        string    `json:"doctorNotes"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func DefaultSaltRecommendation() SaltRecommendation {
	return SaltRecommendation{
		ID:                 SaltRecommendationSingletonID,
		DailyTarget:        DefaultSaltDailyTarget,
		MaxSingleDose:      DefaultSaltMaxSingleDose,
		MinDailyAmount:     DefaultSaltMinDailyAmount,
		RecommendedSources: []string{},
	}
}

package models

import "time"

const (
	DurationMinutes = "minutes"
	DurationHours   = "hours"
	DurationDays    = "days"
)

type Symptom struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ClientID            string    `gorm:"column:client_id;not null;uniqueIndex" json:"clientId"`
	Name                string    `gorm:"not null" json:"name"`
	Severity            int       `gorm:"not null" json:"severity"`
	Duration            float64   `gorm:"not null" json:"duration"`
	DurationType        string    `gorm:"not null" json:"durationType"`
	Date                time.Time `gorm:"not null;index" json:"date"`
	Triggers            []string  `gorm:"serializer:json" json:"triggers"`
	Notes               *string   `json:"notes"`
	ReliefMethods       []string  `gorm:"serializer:json" json:"reliefMethods"`
	ReliefEffectiveness *int      `json:"reliefEffectiveness"`
	CreatedAt           time.Time `json:"createdAt"`
}

func IsValidDurationType(value string) bool {
	switch value {
	case DurationMinutes, DurationHours, DurationDays:
		return true
	default:
		return false
	}
}

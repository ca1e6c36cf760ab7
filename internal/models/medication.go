package models

import "time"

type Medication struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null" json:"name"`
	Dosage          string     `gorm:"not null" json:"dosage"`
	Frequency       string     `gorm:"not null" json:"frequency"`
	TimeOfDay       []string   `gorm:"serializer:json" json:"timeOfDay"`
	StartDate       time.Time  `gorm:"not null" json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Notes           *string    `json:"notes"`
	Active          bool       `gorm:"not null" json:"active"`
	ReminderEnabled bool       `gorm:"not null" json:"reminderEnabled"`
	ReminderTimes   []string   `gorm:"serializer:json" json:"reminderTimes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

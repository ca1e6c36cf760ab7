package models

import "time"

const ProfileSingletonID = 1

type UserProfile struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	Name             string     `json:"name"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Diagnosis        string     `json:"diagnosis"`
	DiagnosisDate    *time.Time `json:"diagnosisDate"`
	Conditions       []string   `gorm:"serializer:json" json:"conditions"`
	Physician        string     `json:"physician"`
	EmergencyContact string     `json:"emergencyContact"`
	Notes            string     `json:"notes"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

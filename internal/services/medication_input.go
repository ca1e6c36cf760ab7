package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

// MedicationInput is used for both create and partial update. On update only
// non-nil fields are applied.
type MedicationInput struct {
	Name            *string    `json:"name"`
	Dosage          *string    `json:"dosage"`
	Frequency       *string    `json:"frequency"`
	TimeOfDay       []string   `json:"timeOfDay"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Notes           *string    `json:"notes"`
	Active          *bool      `json:"active"`
	ReminderEnabled *bool      `json:"reminderEnabled"`
	ReminderTimes   []string   `json:"reminderTimes"`
}

// applyTo copies the present fields onto medication and validates the result.
func (input MedicationInput) applyTo(medication *models.Medication) error {
	if input.Name != nil {
		medication.Name = strings.TrimSpace(*input.Name)
	}
	if input.Dosage != nil {
		medication.Dosage = strings.TrimSpace(*input.Dosage)
	}
	if input.Frequency != nil {
		medication.Frequency = strings.TrimSpace(*input.Frequency)
	}
	if input.TimeOfDay != nil {
		medication.TimeOfDay = models.CleanNames(input.TimeOfDay)
	}
	if input.StartDate != nil {
		medication.StartDate = input.StartDate.UTC()
	}
	if input.EndDate != nil {
		endDate := input.EndDate.UTC()
		medication.EndDate = &endDate
	}
	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		medication.Notes = &notes
	}
	if input.Active != nil {
		medication.Active = *input.Active
	}
	if input.ReminderEnabled != nil {
		medication.ReminderEnabled = *input.ReminderEnabled
	}
	if input.ReminderTimes != nil {
		medication.ReminderTimes = models.CleanNames(input.ReminderTimes)
	}

	problems := make([]string, 0)
	if medication.Name == "" {
		problems = append(problems, "name is required")
	}
	if medication.Dosage == "" {
		problems = append(problems, "dosage is required")
	}
	if medication.Frequency == "" {
		problems = append(problems, "frequency is required")
	}
	if len(medication.TimeOfDay) == 0 {
		problems = append(problems, "at least one time of day is required")
	}
	if medication.StartDate.IsZero() {
		problems = append(problems, "startDate is required")
	}
	if medication.EndDate != nil && medication.EndDate.Before(medication.StartDate) {
		problems = append(problems, "endDate must not be before startDate")
	}
	if len(problems) > 0 {
		return &models.ValidationError{Problems: problems}
	}
	return nil
}

package models

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinSeverity = 1
	MaxSeverity = 10
)

type ValidationError struct {
	Problems []string
}

func (err *ValidationError) Error() string {
	return "Validation error: " + strings.Join(err.Problems, "; ")
}

// SymptomInput is the submission shape for a new symptom. Optional fields are
// pointers; ToSymptom fills in their defaults.
type SymptomInput struct {
	ClientID            string     `json:"clientId,omitempty"`
	Name                string     `json:"name"`
	Severity            *int       `json:"severity"`
	Duration            *float64   `json:"duration"`
	DurationType        string     `json:"durationType"`
	Date                *time.Time `json:"date,omitempty"`
	Triggers            []string   `json:"triggers,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	ReliefMethods       []string   `json:"reliefMethods,omitempty"`
	ReliefEffectiveness *int       `json:"reliefEffectiveness,omitempty"`
}

func (input SymptomInput) Validate() error {
	problems := make([]string, 0)

	if strings.TrimSpace(input.Name) == "" {
		problems = append(problems, "name is required")
	}
	switch {
	case input.Severity == nil:
		problems = append(problems, "severity is required")
	case *input.Severity < MinSeverity || *input.Severity > MaxSeverity:
		problems = append(problems, "severity must be between 1 and 10")
	}
	switch {
	case input.Duration == nil:
		problems = append(problems, "duration is required")
	case math.IsNaN(*input.Duration) || math.IsInf(*input.Duration, 0) || *input.Duration <= 0:
		problems = append(problems, "duration must be greater than 0")
	}
	if !IsValidDurationType(strings.ToLower(strings.TrimSpace(input.DurationType))) {
		problems = append(problems, "durationType must be one of minutes, hours, days")
	}
	if input.ReliefEffectiveness != nil && (*input.ReliefEffectiveness < MinSeverity || *input.ReliefEffectiveness > MaxSeverity) {
		problems = append(problems, "reliefEffectiveness must be between 1 and 10")
	}
	if clientID := strings.TrimSpace(input.ClientID); clientID != "" {
		if _, err := uuid.Parse(clientID); err != nil {
			problems = append(problems, "clientId must be a UUID")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ToSymptom normalizes a validated input. A missing client id or date is
// filled from uuid and now.
func (input SymptomInput) ToSymptom(now time.Time) Symptom {
	symptom := Symptom{
		ClientID:            strings.TrimSpace(input.ClientID),
		Name:                strings.TrimSpace(input.Name),
		DurationType:        strings.ToLower(strings.TrimSpace(input.DurationType)),
		Triggers:            CleanNames(input.Triggers),
		ReliefMethods:       CleanNames(input.ReliefMethods),
		ReliefEffectiveness: input.ReliefEffectiveness,
		Date:                now.UTC(),
	}
	if symptom.ClientID == "" {
		symptom.ClientID = uuid.NewString()
	}
	if input.Severity != nil {
		symptom.Severity = *input.Severity
	}
	if input.Duration != nil {
		symptom.Duration = *input.Duration
	}
	if input.Date != nil && !input.Date.IsZero() {
		symptom.Date = input.Date.UTC()
	}
	if input.Notes != nil {
		if notes := strings.TrimSpace(*input.Notes); notes != "" {
			symptom.Notes = &notes
		}
	}
	return symptom
}

// CleanNames trims entries and drops blanks, preserving order. It never
// returns nil.
func CleanNames(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}

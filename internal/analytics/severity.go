// Package analytics derives dashboard and insight views from symptom
// records. Every function is pure; callers pass the clock and location.
package analytics

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

type Band int

const (
	Mild Band = iota
	Moderate
	Severe
)

func (band Band) String() string {
	switch band {
	case Moderate:
		return "Moderate"
	case Severe:
		return "Severe"
	default:
		return "Mild"
	}
}

// Classify maps a severity onto Mild [1,3], Moderate [4,7] or Severe [8,10].
// Values outside 1..10 clamp to the nearest band.
func Classify(severity int) Band {
	switch {
	case severity <= 3:
		return Mild
	case severity <= 7:
		return Moderate
	default:
		return Severe
	}
}

type BandCounts struct {
	Mild     int `json:"mild"`
	Moderate int `json:"moderate"`
	Severe   int `json:"severe"`
}

func (counts *BandCounts) add(severity int) {
	switch Classify(severity) {
	case Mild:
		counts.Mild++
	case Moderate:
		counts.Moderate++
	case Severe:
		counts.Severe++
	}
}

func (counts BandCounts) Total() int {
	return counts.Mild + counts.Moderate + counts.Severe
}

func CountBands(records []models.Symptom) BandCounts {
	counts := BandCounts{}
	for _, record := range records {
		counts.add(record.Severity)
	}
	return counts
}

// SeveritySummary counts records per band over the trailing seven days
// ending at now, both ends inclusive.
func SeveritySummary(records []models.Symptom, now time.Time) BandCounts {
	windowStart := now.AddDate(0, 0, -7)
	counts := BandCounts{}
	for _, record := range records {
		if record.Date.Before(windowStart) || record.Date.After(now) {
			continue
		}
		counts.add(record.Severity)
	}
	return counts
}

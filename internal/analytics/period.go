package analytics

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

var ErrUnknownPeriod = errors.New("unknown period")

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

func ParsePeriod(raw string) (Period, error) {
	switch period := Period(strings.ToLower(strings.TrimSpace(raw))); period {
	case PeriodWeek, PeriodMonth, PeriodQuarter:
		return period, nil
	case "":
		return PeriodWeek, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, raw)
	}
}

func (period Period) Start(now time.Time) (time.Time, error) {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case PeriodQuarter:
		return now.AddDate(0, -3, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, string(period))
	}
}

// FilterPeriod keeps records dated within [period start, now].
func FilterPeriod(records []models.Symptom, period Period, now time.Time) ([]models.Symptom, error) {
	start, err := period.Start(now)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Symptom, 0, len(records))
	for _, record := range records {
		if record.Date.Before(start) || record.Date.After(now) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}

type Insights struct {
	Period          Period      `json:"period"`
	From            time.Time   `json:"from"`
	To              time.Time   `json:"to"`
	Total           int         `json:"total"`
	AverageSeverity float64     `json:"averageSeverity"`
	Bands           BandCounts  `json:"bands"`
	TopSymptoms     []NameCount `json:"topSymptoms"`
	TopTriggers     []NameCount `json:"topTriggers"`
	Weekly          []DayBucket `json:"weekly"`
	LastSevenDays   BandCounts  `json:"lastSevenDays"`
}

func BuildInsights(records []models.Symptom, period Period, now time.Time, location *time.Location) (Insights, error) {
	filtered, err := FilterPeriod(records, period, now)
	if err != nil {
		return Insights{}, err
	}
	start, _ := period.Start(now)

	return Insights{
		Period:          period,
		From:            start,
		To:              now,
		Total:           len(filtered),
		AverageSeverity: AverageSeverity(filtered),
		Bands:           CountBands(filtered),
		TopSymptoms:     TopSymptoms(filtered, DefaultTopSymptoms),
		TopTriggers:     TopTriggers(filtered, DefaultTopTriggers),
		Weekly:          WeeklyTrend(records, now, location),
		LastSevenDays:   SeveritySummary(records, now),
	}, nil
}

// AverageSeverity is rounded to one decimal; zero for no records.
func AverageSeverity(records []models.Symptom) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, record := range records {
		total += record.Severity
	}
	return math.Round(float64(total)/float64(len(records))*10) / 10
}

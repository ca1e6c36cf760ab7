package analytics

import (
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

type DayBucket struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	BandCounts
}

// WeeklyTrend buckets records into the seven days of the Monday-start week
// containing now. Days without records stay at zero.
func WeeklyTrend(records []models.Symptom, now time.Time, location *time.Location) []DayBucket {
	monday := WeekStart(now, location)

	buckets := make([]DayBucket, 7)
	offsets := make(map[string]int, len(buckets))
	for offset := range buckets {
		day := monday.AddDate(0, 0, offset)
		buckets[offset] = DayBucket{Date: day, Label: day.Format("Mon")}
		offsets[day.Format(time.DateOnly)] = offset
	}

	for _, record := range records {
		offset, ok := offsets[DateAtLocation(record.Date, location).Format(time.DateOnly)]
		if !ok {
			continue
		}
		buckets[offset].add(record.Severity)
	}
	return buckets
}

// WeekStart returns midnight of the Monday on or before value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	shift := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -shift)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

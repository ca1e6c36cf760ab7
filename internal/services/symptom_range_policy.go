package services

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// ParseSymptomRange accepts RFC3339 timestamps or calendar dates. A calendar
// end date covers that whole day.
func ParseSymptomRange(rawStart string, rawEnd string, location *time.Location) (time.Time, time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	from, _, err := parseRangeBound(rawStart, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseRangeBound(rawEnd, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to, nil
}

func parseRangeBound(raw string, location *time.Location) (time.Time, bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false, ErrInvalidDateRange
	}
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed, false, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, value, location)
	if err != nil {
		return time.Time{}, false, ErrInvalidDateRange
	}
	return parsed, true, nil
}

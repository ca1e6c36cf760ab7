package analytics

import (
	"sort"
	"strings"

	"github.com/terraincognita07/potsy/internal/models"
)

// SearchHistory matches query case-insensitively against name, notes and
// triggers and returns the newest records first.
func SearchHistory(records []models.Symptom, query string) []models.Symptom {
	needle := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Symptom, 0, len(records))
	for _, record := range records {
		if needle == "" || recordMatches(record, needle) {
			matched = append(matched, record)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}

func recordMatches(record models.Symptom, needle string) bool {
	if strings.Contains(strings.ToLower(record.Name), needle) {
		return true
	}
	if record.Notes != nil && strings.Contains(strings.ToLower(*record.Notes), needle) {
		return true
	}
	for _, trigger := range record.Triggers {
		if strings.Contains(strings.ToLower(trigger), needle) {
			return true
		}
	}
	return false
}

package analytics

import (
	"sort"

	"github.com/terraincognita07/potsy/internal/models"
)

const (
	DefaultTopSymptoms = 10
	DefaultTopTriggers = 5
)

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TopSymptoms(records []models.Symptom, limit int) []NameCount {
	keys := make([]string, 0, len(records))
	for _, record := range records {
		keys = append(keys, record.Name)
	}
	return topN(keys, limit)
}

// TopTriggers counts each trigger of a record separately.
func TopTriggers(records []models.Symptom, limit int) []NameCount {
	keys := make([]string, 0, len(records))
	for _, record := range records {
		keys = append(keys, record.Triggers...)
	}
	return topN(keys, limit)
}

// topN counts exact keys and orders by count descending. Equal counts keep
// first-seen order.
func topN(keys []string, limit int) []NameCount {
	counts := make([]NameCount, 0)
	position := make(map[string]int)
	for _, key := range keys {
		index, seen := position[key]
		if !seen {
			position[key] = len(counts)
			counts = append(counts, NameCount{Name: key, Count: 1})
			continue
		}
		counts[index].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

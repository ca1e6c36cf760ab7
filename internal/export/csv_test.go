package export

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

func TestCSVRows(t *testing.T) {
	notes := "after standing"
	effectiveness := 6
	symptoms := []models.Symptom{
		{
			ID:                  3,
			Name:                "Palpitations",
			Severity:            6,
			Duration:            1.5,
			DurationType:        models.DurationHours,
			Date:                time.Date(2026, time.March, 1, 7, 5, 0, 0, time.UTC),
			Triggers:            []string{"Standing", "Heat"},
			Notes:               &notes,
			ReliefMethods:       []string{"Compression", "Fluids"},
			ReliefEffectiveness: &effectiveness,
		},
		{
			ID:           4,
			Name:         "Fatigue",
			Severity:     3,
			Duration:     2,
			DurationType: models.DurationDays,
			Date:         time.Date(2026, time.March, 2, 23, 30, 0, 0, time.UTC),
		},
	}

	rows := CSVRows(symptoms, time.UTC)
	want := [][]string{
		{"3", "Palpitations", "6", "1.5", "hours", "2026-03-01 07:05", "Standing, Heat", "after standing", "Compression, Fluids", "6"},
		{"4", "Fatigue", "3", "2", "days", "2026-03-02 23:30", "", "", "", ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("CSVRows() = %#v, want %#v", rows, want)
	}
	if len(CSVHeaders) != len(want[0]) {
		t.Fatalf("expected %d headers, got %d", len(want[0]), len(CSVHeaders))
	}
}

func TestCSVRowsUsesLocation(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	rows := CSVRows([]models.Symptom{{ID: 1, Date: time.Date(2026, time.March, 1, 23, 30, 0, 0, time.UTC)}}, berlin)
	if rows[0][5] != "2026-03-02 00:30" {
		t.Fatalf("expected date in location, got %q", rows[0][5])
	}
}

func TestCSVQuotesCommaLists(t *testing.T) {
	payload, err := CSV([]models.Symptom{{ID: 1, Name: "Headache", Triggers: []string{"Stress", "Heat"}}}, time.UTC)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(payload))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 || records[0][0] != "ID" || records[1][6] != "Stress, Heat" {
		t.Fatalf("unexpected csv records %#v", records)
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2026, time.March, 12, 15, 30, 0, 0, time.UTC), "csv")
	if got != "potsy-symptoms-2026-03-12.csv" {
		t.Fatalf("Filename() = %q", got)
	}
}

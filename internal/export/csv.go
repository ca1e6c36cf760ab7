// Package export renders symptom records as the CSV download shared by the
// server and the offline client.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

const dateLayout = "2006-01-02 15:04"

var CSVHeaders = []string{
	"ID",
	"Symptom",
	"Severity (1-10)",
	"Duration",
	"Duration Type",
	"Date",
	"Triggers",
	"Notes",
	"Relief Methods",
	"Relief Effectiveness",
}

func CSVRows(symptoms []models.Symptom, location *time.Location) [][]string {
	if location == nil {
		location = time.UTC
	}

	rows := make([][]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		notes := ""
		if symptom.Notes != nil {
			notes = *symptom.Notes
		}
		effectiveness := ""
		if symptom.ReliefEffectiveness != nil {
			effectiveness = strconv.Itoa(*symptom.ReliefEffectiveness)
		}

		rows = append(rows, []string{
			strconv.FormatUint(uint64(symptom.ID), 10),
			symptom.Name,
			strconv.Itoa(symptom.Severity),
			strconv.FormatFloat(symptom.Duration, 'f', -1, 64),
			symptom.DurationType,
			symptom.Date.In(location).Format(dateLayout),
			strings.Join(symptom.Triggers, ", "),
			notes,
			strings.Join(symptom.ReliefMethods, ", "),
			effectiveness,
		})
	}
	return rows
}

// CSV encodes the header row followed by one row per symptom.
func CSV(symptoms []models.Symptom, location *time.Location) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(CSVHeaders); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(CSVRows(symptoms, location)); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func Filename(now time.Time, extension string) string {
	return fmt.Sprintf("potsy-symptoms-%s.%s", now.Format(time.DateOnly), extension)
}

package api

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExportCSVWithoutSymptomsReturnsNotFound(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/export/csv", "/api/export/json"} {
		response, raw := doRequest(t, app, http.MethodGet, path, nil)
		expectStatus(t, response, raw, http.StatusNotFound)
		if got := readAPIError(t, raw); got != "No symptoms to export" {
			t.Fatalf("%s: unexpected message %q", path, got)
		}
	}
}

func TestExportCSV(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	payload := headachePayload()
	payload["date"] = "2026-03-10T09:45:00Z"
	payload["reliefMethods"] = []string{"Fluids", "Lying down"}
	response, raw := doRequest(t, app, http.MethodPost, "/api/symptoms", payload)
	expectStatus(t, response, raw, http.StatusCreated)

	response, raw = doRequest(t, app, http.MethodGet, "/api/export/csv", nil)
	expectStatus(t, response, raw, http.StatusOK)
	if got := response.Header.Get("Content-Type"); !strings.Contains(got, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", got)
	}
	if got := response.Header.Get("Content-Disposition"); got != "attachment; filename=potsy-symptoms-2026-03-12.csv" {
		t.Fatalf("unexpected content disposition %q", got)
	}

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(records))
	}
	if records[0][0] != "ID" || records[0][2] != "Severity (1-10)" || records[0][9] != "Relief Effectiveness" {
		t.Fatalf("unexpected header %#v", records[0])
	}

	row := records[1]
	if row[1] != "Headache" || row[3] != "2" || row[4] != "hours" || row[5] != "2026-03-10 09:45" {
		t.Fatalf("unexpected row %#v", row)
	}
	if row[6] != "Stress" || row[8] != "Fluids, Lying down" || row[9] != "" {
		t.Fatalf("unexpected list columns %#v", row)
	}
}

func TestExportJSON(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	response, raw := doRequest(t, app, http.MethodPost, "/api/symptoms", headachePayload())
	expectStatus(t, response, raw, http.StatusCreated)

	response, raw = doRequest(t, app, http.MethodGet, "/api/export/json", nil)
	expectStatus(t, response, raw, http.StatusOK)
	if got := response.Header.Get("Content-Disposition"); !strings.Contains(got, "potsy-symptoms-2026-03-12.json") {
		t.Fatalf("unexpected content disposition %q", got)
	}

	payload := symptomExport{}
	decodeJSON(t, raw, &payload)
	if payload.ExportedAt != "2026-03-12T15:30:00Z" {
		t.Fatalf("unexpected exportedAt %q", payload.ExportedAt)
	}
	if len(payload.Symptoms) != 1 || payload.Symptoms[0].Name != "Headache" {
		t.Fatalf("unexpected exported symptoms %#v", payload.Symptoms)
	}
}

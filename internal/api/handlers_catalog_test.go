package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/potsy/internal/models"
)

func TestCatalogsAreSeeded(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	tests := []struct {
		path     string
		expected []string
	}{
		{path: "/api/triggers", expected: models.DefaultTriggers()},
		{path: "/api/common-symptoms", expected: models.DefaultCommonSymptoms()},
	}
	for _, tc := range tests {
		response, raw := doRequest(t, app, http.MethodGet, tc.path, nil)
		expectStatus(t, response, raw, http.StatusOK)

		items := []models.CatalogItem{}
		decodeJSON(t, raw, &items)
		if len(items) != len(tc.expected) {
			t.Fatalf("%s: expected %d seeded entries, got %d", tc.path, len(tc.expected), len(items))
		}
		for index, name := range tc.expected {
			if items[index].Name != name {
				t.Fatalf("%s: expected entry %d to be %q, got %q", tc.path, index, name, items[index].Name)
			}
		}
	}
}

func TestCreateTriggerDedupesCaseInsensitively(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	response, raw := doRequest(t, app, http.MethodPost, "/api/triggers", map[string]string{"name": "stress"})
	expectStatus(t, response, raw, http.StatusOK)
	existing := models.CatalogItem{}
	decodeJSON(t, raw, &existing)
	if existing.Name != "Stress" {
		t.Fatalf("expected stored name Stress, got %q", existing.Name)
	}

	response, raw = doRequest(t, app, http.MethodPost, "/api/triggers", map[string]string{"name": "Heat"})
	expectStatus(t, response, raw, http.StatusCreated)

	_, raw = doRequest(t, app, http.MethodGet, "/api/triggers", nil)
	items := []models.CatalogItem{}
	decodeJSON(t, raw, &items)
	if len(items) != len(models.DefaultTriggers())+1 {
		t.Fatalf("expected one new trigger, got %d entries", len(items))
	}
}

func TestCreateCommonSymptomRejectsBlankName(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)

	response, raw := doRequest(t, app, http.MethodPost, "/api/common-symptoms", map[string]string{"name": "  "})
	expectStatus(t, response, raw, http.StatusBadRequest)
	if got := readAPIError(t, raw); got != "Validation error: name must be between 1 and 80 characters" {
		t.Fatalf("unexpected message %q", got)
	}
}

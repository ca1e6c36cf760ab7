package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/potsy/internal/db"
)

func TestResolvePort(t *testing.T) {
	port, err := resolvePort("")
	if err != nil || port != "8080" {
		t.Fatalf("expected default port 8080, got %q (%v)", port, err)
	}

	port, err = resolvePort("9090")
	if err != nil || port != "9090" {
		t.Fatalf("expected port 9090, got %q (%v)", port, err)
	}

	for _, raw := range []string{"0", "70000", "not-a-number"} {
		if _, err := resolvePort(raw); err == nil {
			t.Fatalf("expected invalid port %q to fail", raw)
		}
	}
}

func TestNewAppServesHealthAndJSONNotFound(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "potsy.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	app, err := newApp("Potsy", database, time.UTC)
	if err != nil {
		t.Fatalf("newApp() unexpected error: %v", err)
	}

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	missing, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil), -1)
	if err != nil {
		t.Fatalf("missing route request failed: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", missing.StatusCode)
	}
	payload := map[string]string{}
	if err := json.NewDecoder(missing.Body).Decode(&payload); err != nil {
		t.Fatalf("decode not found payload: %v", err)
	}
	if payload["message"] != "Not found" {
		t.Fatalf("expected Not found message, got %q", payload["message"])
	}
}

func TestNewAppRejectsNilDatabase(t *testing.T) {
	if _, err := newApp("Potsy", nil, time.UTC); err == nil {
		t.Fatal("expected error for nil database")
	}
}

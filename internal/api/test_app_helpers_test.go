package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/potsy/internal/db"
)

var testNow = time.Date(2026, time.March, 12, 15, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "potsy-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, time.UTC)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response, raw
}

func decodeJSON(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, raw []byte) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, raw, &payload)
	return payload["message"]
}

func expectStatus(t *testing.T, response *http.Response, raw []byte, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(raw))
	}
}

// Package remote talks to the potsy REST server.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/terraincognita07/potsy/internal/models"
)

const maxResponseBytes = 8 << 20

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Health(ctx context.Context) error {
	_, _, err := c.do(ctx, "health", http.MethodGet, "/healthz", nil)
	return err
}

// CreateSymptom posts input. created is false when the server already held a
// record with the same client id.
func (c *Client) CreateSymptom(ctx context.Context, input models.SymptomInput) (models.Symptom, bool, error) {
	status, body, err := c.do(ctx, "create symptom", http.MethodPost, "/api/symptoms", input)
	if err != nil {
		return models.Symptom{}, false, err
	}
	var symptom models.Symptom
	if err := decode("create symptom", status, body, &symptom); err != nil {
		return models.Symptom{}, false, err
	}
	return symptom, status == http.StatusCreated, nil
}

func (c *Client) ListSymptoms(ctx context.Context) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := c.getJSON(ctx, "list symptoms", "/api/symptoms", &symptoms); err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (c *Client) ListTriggers(ctx context.Context) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, 0)
	if err := c.getJSON(ctx, "list triggers", "/api/triggers", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListCommonSymptoms(ctx context.Context) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, 0)
	if err := c.getJSON(ctx, "list common symptoms", "/api/common-symptoms", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// EnsureTrigger creates name in the trigger catalog unless a case-insensitive
// match exists, and returns the stored entry either way.
func (c *Client) EnsureTrigger(ctx context.Context, name string) (models.CatalogItem, error) {
	status, body, err := c.do(ctx, "create trigger", http.MethodPost, "/api/triggers", map[string]string{"name": name})
	if err != nil {
		return models.CatalogItem{}, err
	}
	var item models.CatalogItem
	if err := decode("create trigger", status, body, &item); err != nil {
		return models.CatalogItem{}, err
	}
	return item, nil
}

// ExportCSV streams the server's CSV export into w and returns the number of
// bytes written. An empty server answers with ErrNotFound.
func (c *Client) ExportCSV(ctx context.Context, w io.Writer) (int64, error) {
	const op = "export csv"
	resp, err := c.send(ctx, op, http.MethodGet, "/api/export/csv", nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := readLimited(resp.Body)
		return 0, statusFailure(op, resp.StatusCode, body)
	}
	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return written, &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: read body: %v", ErrUnreachable, err)}
	}
	return written, nil
}

func (c *Client) getJSON(ctx context.Context, op string, path string, target any) error {
	status, body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(op, status, body, target)
}

func (c *Client) do(ctx context.Context, op string, method string, path string, payload any) (int, []byte, error) {
	resp, err := c.send(ctx, op, method, path, payload)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := readLimited(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &Error{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, body, statusFailure(op, resp.StatusCode, body)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) send(ctx context.Context, op string, method string, path string, payload any) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrUnreachable, err)}
	}
	return resp, nil
}

// readLimited reads at most maxResponseBytes. A longer body is an error, never
// a silently shortened one.
func readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("%w: response larger than %d bytes", ErrUnexpectedResponse, maxResponseBytes)
	}
	return body, nil
}

func statusFailure(op string, status int, body []byte) *Error {
	return &Error{
		Op:         op,
		StatusCode: status,
		Message:    errorMessage(body),
		Err:        statusError(status),
	}
}

func decode(op string, status int, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return &Error{Op: op, StatusCode: status, Err: fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)}
	}
	return nil
}

// errorMessage extracts the server's {"message": ...} envelope.
func errorMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}

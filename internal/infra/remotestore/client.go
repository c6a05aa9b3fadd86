// Package remotestore implements the persistence adapter ports against
// a remote record service. Domain fields are mapped to the remote
// schema's column names and responses carry a top-level success flag
// plus, for batch operations, per-record results.
package remotestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

const (
	taskTable = "task_c"
	listTable = "list_c"
)

// Client is a thin HTTP client for the record service. Both adapters
// share one client so the connection pool is reused.
type Client struct {
	httpc     *http.Client
	logger    domain.Logger
	baseURL   string
	apiKey    string
	projectID string
}

// NewClient creates a record-service client.
func NewClient(baseURL, apiKey, projectID string, logger domain.Logger) *Client {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		httpc:     &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
		baseURL:   baseURL,
		apiKey:    apiKey,
		projectID: projectID,
	}
}

// envelope is the structured response returned by every endpoint.
type envelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []recordResult  `json:"results,omitempty"`
	Success bool            `json:"success"`
}

// recordResult is the per-record outcome within a batch response.
type recordResult struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []fieldMessage  `json:"errors,omitempty"`
	Success bool            `json:"success"`
}

// fieldMessage is a field-level validation error from the service.
type fieldMessage struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

func (c *Client) recordsURL(table string) string {
	return fmt.Sprintf("%s/api/%s/tables/%s/records", c.baseURL, c.projectID, table)
}

// do issues one request and decodes the response envelope. A transport
// error, a non-2xx status or a false success flag all surface as
// ErrBackendUnavailable so callers can degrade uniformly.
func (c *Client) do(ctx context.Context, method, url string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("record service unreachable", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("record service error", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrBackendUnavailable, err)
	}
	if !env.Success {
		c.logger.Error("record service rejected request", "url", url, "message", env.Message)
		return nil, fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, env.Message)
	}
	return &env, nil
}

// batchErrors converts failed per-record results, keeping field-level
// messages for user-facing display.
func batchErrors(results []recordResult) []domain.BatchError {
	var failed []domain.BatchError
	for i, r := range results {
		if r.Success {
			continue
		}
		be := domain.BatchError{Index: i, Message: r.Message}
		for _, fe := range r.Errors {
			be.Fields = append(be.Fields, domain.FieldError{Field: fe.FieldLabel, Message: fe.Message})
		}
		failed = append(failed, be)
	}
	return failed
}

package nlquery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second

	generatePath = "/generate-sql"

	// maxErrorBody caps how much of a failed response is read for its detail.
	maxErrorBody = 64 << 10
)

// ErrEmptyQuery is returned when the question is blank.
var ErrEmptyQuery = errors.New("query is required")

// CollaboratorError is a non-2xx answer from the NL-to-SQL service.
type CollaboratorError struct {
	StatusCode int
	Detail     string
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("nl-to-sql service returned %d: %s", e.StatusCode, e.Detail)
}

// Result is the collaborator's answer. The SQL text and rows are relayed as
// opaque display data and never executed or validated here.
type Result struct {
	SQL     string   `json:"sql"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type generateRequest struct {
	Query string `json:"query"`
}

// Client calls the NL-to-SQL collaborator over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate sends the question to the collaborator and returns its generated
// query and result set. Non-2xx answers are returned as *CollaboratorError.
func (c *Client) Generate(ctx context.Context, question string) (*Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuery
	}

	jsonBody, err := json.Marshal(generateRequest{Query: question})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("[NLQuery] Forwarding question", "length", len(question))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nl-to-sql service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		collabErr := &CollaboratorError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(body, resp.StatusCode),
		}
		slog.Warn("[NLQuery] Collaborator rejected question",
			"status", collabErr.StatusCode,
			"detail", collabErr.Detail)
		return nil, collabErr
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var result Result
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode nl-to-sql response: %w", err)
	}
	if result.Columns == nil {
		result.Columns = []string{}
	}
	if result.Rows == nil {
		result.Rows = [][]any{}
	}

	return &result, nil
}

// errorDetail extracts "detail" or "error" from a JSON error body, falling
// back to the raw text and then the status text.
func errorDetail(body []byte, status int) string {
	var parsed struct {
		Detail any    `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch d := parsed.Detail.(type) {
		case string:
			if d != "" {
				return d
			}
		case nil:
		default:
			if encoded, err := json.Marshal(d); err == nil {
				return string(encoded)
			}
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/OpenRICA/permit-intake/internal/application/model"
)

const (
	submitPath     = "/submit"
	defaultTimeout = 30 * time.Second

	// fallbackErrorMessage is shown when an error response carries no
	// structured error field.
	fallbackErrorMessage = "An unknown error occurred"
)

// ConnectivityError reports that the submission never reached the service.
// Transport timeouts are treated the same way. The form state is untouched
// and the submission can be retried as-is.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("failed to connect to the server: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// SubmissionError reports that the service rejected the submission. Message
// is the server-provided error when present, otherwise a generic fallback.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// IncompleteFormError reports that the local completeness check failed and
// no network call was attempted.
type IncompleteFormError struct {
	Missing []string
}

func (e *IncompleteFormError) Error() string {
	return fmt.Sprintf("form is incomplete: %d required field(s) missing", len(e.Missing))
}

// Client submits assembled payloads to the intake service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the service at baseURL. A nil httpClient
// gets a default with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Submit posts the payload to the submission endpoint and returns the
// server's confirmation message.
func (c *Client) Submit(ctx context.Context, payload *model.SubmitApplicationDTO) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	var result struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	// A malformed body on an error status still yields the fallback message.
	_ = json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode != http.StatusOK {
		message := result.Error
		if message == "" {
			message = fallbackErrorMessage
		}
		return "", &SubmissionError{StatusCode: resp.StatusCode, Message: message}
	}

	return result.Message, nil
}

// SubmitForm runs the local completeness check and, only if it passes,
// builds the payload and submits it. On any failure the field state in f is
// preserved for retry.
func (c *Client) SubmitForm(ctx context.Context, f *Fields) (string, error) {
	if ok, missing := f.ValidateLocally(); !ok {
		return "", &IncompleteFormError{Missing: missing}
	}
	return c.Submit(ctx, f.BuildPayload())
}

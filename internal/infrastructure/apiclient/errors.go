package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultMessage is shown when an error carries nothing better.
const DefaultMessage = "Ocurrió un error. Intenta nuevamente."

// ErrTransport marks failures where no HTTP answer was received.
var ErrTransport = errors.New("upstream unreachable")

// APIError is a non-2xx answer from the API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// StatusText is the reason phrase of the status.
	StatusText string
	// Message is the "message" field of the body, if any.
	Message string
	// Errors is the "errors" list of the body, stringified.
	Errors []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if msg := e.detail(); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func (e *APIError) detail() string {
	if len(e.Errors) > 0 && e.Errors[0] != "" {
		return e.Errors[0]
	}
	return e.Message
}

// IsUnauthorized reports whether the API rejected the credentials.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether the resource does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// parseError builds an APIError from an error body of the shape
// {"errors": [...], "message": "...", "error": "..."}.
func parseError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
	}

	var envelope struct {
		Errors  []json.RawMessage `json:"errors"`
		Message json.RawMessage   `json:"message"`
		Error   string            `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	for _, raw := range envelope.Errors {
		apiErr.Errors = append(apiErr.Errors, stringify(raw))
	}
	apiErr.Message = stringify(envelope.Message)
	if apiErr.StatusText == "" {
		apiErr.StatusText = envelope.Error
	}
	return apiErr
}

// stringify renders a JSON value as text: strings unquoted, null as "",
// anything else verbatim.
func stringify(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}

// Message resolves the user-facing text of err: the first entry of the
// API's errors list, then its message, then the status text, then the error
// string itself, then fallback (DefaultMessage when empty).
func Message(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultMessage
	}
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.detail(); msg != "" {
			return msg
		}
		if apiErr.StatusText != "" {
			return apiErr.StatusText
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// AsAPIError returns the APIError wrapped in err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

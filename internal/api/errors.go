package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the service.
// Callers should prefer the predicate functions (IsNotFound, IsUnauthorized, etc.)
// to inspect errors rather than asserting on this type directly.
type APIError struct {
	operation  string
	statusCode int
	message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.operation, e.statusCode, e.message)
}

func newAPIError(operation string, statusCode int, message string) *APIError {
	return &APIError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
	}
}

// StatusCode returns the HTTP status code from the response.
func (e *APIError) StatusCode() int { return e.statusCode }

// Message returns the human-readable error message.
func (e *APIError) Message() string { return e.message }

// Operation returns a short description of the API call that failed.
func (e *APIError) Operation() string { return e.operation }

// IsNotFound reports whether err is an API error with HTTP 404 status.
func IsNotFound(err error) bool { return HasStatusCode(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is an API error with HTTP 401 status.
func IsUnauthorized(err error) bool { return HasStatusCode(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an API error with HTTP 403 status.
func IsForbidden(err error) bool { return HasStatusCode(err, http.StatusForbidden) }

// HasStatusCode reports whether err is an API error whose HTTP status code matches.
func HasStatusCode(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.statusCode == code
}

// parseAPIError builds an *APIError from a failed response, preferring the
// service's structured error body and falling back to the raw text.
func parseAPIError(operation string, statusCode int, status string, body []byte) *APIError {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if msg := eb.Message.String(); msg != "" {
			return newAPIError(operation, statusCode, msg)
		}
		if eb.Error != "" {
			return newAPIError(operation, statusCode, eb.Error)
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = status
	}
	return newAPIError(operation, statusCode, msg)
}

// messageList accepts either "msg" or ["msg1", "msg2"].
type messageList []string

func (m *messageList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*m = arr
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*m = []string{str}
	}
	return nil
}

func (m messageList) String() string { return strings.Join(m, "; ") }

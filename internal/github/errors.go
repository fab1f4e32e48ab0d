package github

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError is returned for non-2xx upstream responses and transport
// failures. StatusCode is 0 when no response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
	URL        string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status to propagate to API callers
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode < 400 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}

// ValidationError represents invalid input to GitHub client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// HTTPStatus implements the status mapping used by the JSON API
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(statusCode int, message, url string, err error) error {
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    message,
		URL:        url,
		Err:        err,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}

// IsUpstreamError checks if an error is an upstream error
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// StatusCode returns the upstream status carried by err, or 0
func StatusCode(err error) int {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}
	return 0
}

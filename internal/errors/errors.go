package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrConfiguration ErrorType = "CONFIGURATION"
	ErrValidation    ErrorType = "VALIDATION"
	ErrUpstream      ErrorType = "UPSTREAM"
	ErrInternal      ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status of the cause when it carries one and
// otherwise maps the error type to a response status
func (e *AppError) HTTPStatus() int {
	var coder interface{ HTTPStatus() int }
	if e.Cause != nil && stderrors.As(e.Cause, &coder) {
		return coder.HTTPStatus()
	}

	switch e.Type {
	case ErrConfiguration, ErrValidation:
		return http.StatusBadRequest
	case ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}

// ConfigurationError is returned when the account identity is not configured.
// It is never retryable.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// HTTPStatus implements the status mapping used by the JSON API
func (e *ConfigurationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(field, message string) error {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// ErrNoUsername is the message surfaced when no account is configured
const ErrNoUsername = "No username configured"

// NewNoUsernameError creates the ConfigurationError for a missing username
func NewNoUsernameError() error {
	return NewConfigurationError("username", ErrNoUsername)
}

// PartialFetchError describes one failed item of a batch. It is logged and
// the item is dropped; callers never receive it.
type PartialFetchError struct {
	Item  string
	Cause error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Item, e.Cause)
}

func (e *PartialFetchError) Unwrap() error {
	return e.Cause
}

// NewPartialFetchError creates a new PartialFetchError
func NewPartialFetchError(item string, cause error) error {
	return &PartialFetchError{
		Item:  item,
		Cause: cause,
	}
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	if stderrors.As(err, &cfgErr) {
		return true
	}
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Type == ErrConfiguration
}

// IsPartialFetch checks if the error is a partial fetch error
func IsPartialFetch(err error) bool {
	var partialErr *PartialFetchError
	return stderrors.As(err, &partialErr)
}

// HTTPStatus returns the response status for err. Errors that know their
// status expose it through an HTTPStatus method; everything else is a 500.
func HTTPStatus(err error) int {
	var coder interface{ HTTPStatus() int }
	if stderrors.As(err, &coder) {
		return coder.HTTPStatus()
	}
	return http.StatusInternalServerError
}

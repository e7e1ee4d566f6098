package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the search pipeline. Wrap them with
// fmt.Errorf("%w: ...") so callers can classify with errors.Is.
var (
	// ErrInvalidRequest indicates malformed user input. Fatal to the
	// current operation; the offending value is reported back to the user.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotImplemented indicates a provider variant that exists in the
	// selection set but has no working implementation yet.
	ErrNotImplemented = errors.New("provider not implemented")

	// ErrMissingCredentials indicates a provider that cannot be used
	// because its required credentials are absent from the configuration.
	ErrMissingCredentials = errors.New("missing provider credentials")
)

// ValidationError describes a single invalid input field. The offending
// value is embedded in Message at construction time.
type ValidationError struct {
	// Field is the name of the input that failed validation
	Field string

	// Message describes why the input was rejected, including the value
	Message string
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap ties every ValidationError to ErrInvalidRequest so callers can
// classify without knowing the concrete type.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// ProviderError describes a failure inside a live provider: network
// failure, non-2xx response, or a response that did not match the expected
// schema. It is reported to the user and never crashes the process; the
// search simply yields no results for that attempt.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error
}

// NewProviderError wraps an error with provider context.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As checks.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConfigurationError describes a selected provider that cannot be used at
// all (missing credentials, unimplemented variant). It is resolved by
// falling back to the mock provider with a warning, never by aborting.
type ConfigurationError struct {
	// Provider is the name of the unusable provider
	Provider string

	// Err is the underlying cause (ErrMissingCredentials, ErrNotImplemented)
	Err error
}

// NewConfigurationError wraps a provider setup failure.
func NewConfigurationError(provider string, err error) *ConfigurationError {
	return &ConfigurationError{Provider: provider, Err: err}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %s unusable: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As checks.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a
// formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsNotImplemented checks if the error is or wraps ErrNotImplemented.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsMissingCredentials checks if the error is or wraps ErrMissingCredentials.
func IsMissingCredentials(err error) bool {
	return errors.Is(err, ErrMissingCredentials)
}

// IsProviderError checks if the error is a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsConfigurationError checks if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

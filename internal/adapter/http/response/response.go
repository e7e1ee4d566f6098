// Package response provides standardized HTTP response builders for the flight search API.
// Every endpoint answers with the same envelope so clients can branch on a
// single success flag instead of inspecting status codes and body shapes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	// Success tells the client which half of the envelope to read
	Success bool `json:"success"`

	// Data carries the payload when Success is true
	Data interface{} `json:"data,omitempty"`

	// Error carries the failure details otherwise
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the failure half of the envelope.
type ErrorDetail struct {
	// Code is a stable identifier clients can branch on
	Code string `json:"code"`

	// Message is the human-readable account of the failure
	Message string `json:"message"`

	// Details maps request fields to messages for validation failures
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeProviderError   = "provider_error"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgProviderFailed     = "The flight provider request failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// Success wraps data in a passing envelope.
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// Failure wraps an error code, message, and optional field details in a
// failing envelope.
func Failure(code, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// OK writes a 200 OK envelope with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Success(data))
}

// Fail writes a failure envelope with the given status code.
func Fail(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, Failure(code, message, nil))
}

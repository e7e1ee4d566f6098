// Package response provides standardized HTTP response builders for the flight search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request envelope with the given error message.
func BadRequest(c echo.Context, message string) error {
	return Fail(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request envelope for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return Fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody)
}

// ValidationError writes a 400 Bad Request envelope with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeValidationError, MsgValidationFailed, details))
}

// ValidationErrorWithMessage writes a 400 Bad Request envelope with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return Fail(c, http.StatusBadRequest, CodeValidationError, message)
}

// ProviderError writes a 502 Bad Gateway envelope for upstream provider failures.
func ProviderError(c echo.Context) error {
	return Fail(c, http.StatusBadGateway, CodeProviderError, MsgProviderFailed)
}

// ProviderErrorWithMessage writes a 502 Bad Gateway envelope with a custom message.
func ProviderErrorWithMessage(c echo.Context, message string) error {
	return Fail(c, http.StatusBadGateway, CodeProviderError, message)
}

// GatewayTimeout writes a 504 Gateway Timeout envelope.
func GatewayTimeout(c echo.Context) error {
	return Fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout)
}

// RequestCancelled writes a 504 Gateway Timeout envelope for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return Fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled)
}

// InternalServerError writes a 500 Internal Server Error envelope.
func InternalServerError(c echo.Context) error {
	return Fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError)
}

// InternalServerErrorWithMessage writes a 500 Internal Server Error envelope with a custom message.
func InternalServerErrorWithMessage(c echo.Context, message string) error {
	return Fail(c, http.StatusInternalServerError, CodeInternalError, message)
}

// Package middleware wires the cross-cutting HTTP concerns for the search
// API: request ID correlation, request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the correlation ID between client and server.
const RequestIDHeader = "X-Request-ID"

// requestIDKey stores the correlation ID on the echo context.
const requestIDKey = "request_id"

// RequestID returns middleware that tags every request with a correlation ID.
// A client-supplied X-Request-ID is kept as is so gateways can trace a call
// end to end; otherwise a fresh UUID is issued. The ID is stored on the
// context and echoed back in the response headers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID set by RequestID, or an empty
// string when the middleware has not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

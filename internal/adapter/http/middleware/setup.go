package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// Setup registers the standard middleware chain on the Echo instance. Call
// it before registering routes. RequestID runs first so both the request log
// and any panic log carry the correlation ID; Recover sits innermost so the
// request logger still observes the 500 written for a recovered panic.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}

// SetupWithConfig registers the standard chain with custom recovery behavior.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RecoverWithConfig(log, recoveryConfig))
}

// Chain returns the standard middleware as a slice for selective use on
// route groups.
func Chain(log *logger.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log),
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/travel-app/flight-search-tool/internal/adapter/http/response"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// RecoveryConfig controls what the recovery middleware captures.
type RecoveryConfig struct {
	// DisablePrintStack suppresses the stack trace field in panic logs
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.WithRequestID(GetRequestID(c)).Error().
						Str("panic", panicMsg)

					if !config.DisablePrintStack {
						event = event.Str("stack", string(debug.Stack()))
					}

					event.Msg("Panic recovered")

					// Panic details stay in the log; the client only sees the generic envelope
					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError,
							response.Failure(response.CodeInternalError, response.MsgInternalError, nil))
					}
				}
			}()

			return next(c)
		}
	}
}

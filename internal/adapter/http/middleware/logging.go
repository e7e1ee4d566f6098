package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, path, status, duration, and
// client info. The log level follows the response status: 5xx at error,
// 4xx at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Feed the error through Echo's handler so the response
				// status is final before it is read below.
				c.Error(err)
			}

			duration := time.Since(start)

			// Request ID comes from the RequestID middleware; the
			// derived logger carries it on every field set.
			reqLog := log.WithRequestID(GetRequestID(c))

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// The error was consumed by c.Error above.
			return nil
		}
	}
}

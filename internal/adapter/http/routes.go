// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"github.com/labstack/echo/v4"
)

// Route paths served by the API.
const (
	healthPath = "/health"
	apiPrefix  = "/api/v1"
	searchPath = "/flights/search"
)

// RegisterRoutes attaches the handler endpoints to the Echo instance.
// Search lives under the versioned API prefix; health does not, so probes
// keep working across API versions.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	e.GET(healthPath, h.Health)
	mountAPI(e.Group(apiPrefix), h)
}

// RegisterRoutesWithMiddleware attaches the same endpoints with the given
// middleware applied to the API group only. The health endpoint stays
// outside the chain so load balancer probes are never logged or
// request-ID tagged.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET(healthPath, h.Health)
	mountAPI(e.Group(apiPrefix, middleware...), h)
}

// mountAPI registers the versioned endpoints on an API group.
func mountAPI(api *echo.Group, h *FlightHandler) {
	api.POST(searchPath, h.SearchFlights)
}

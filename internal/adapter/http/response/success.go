// Package response provides standardized HTTP response builders for the flight search API.
package response

import (
	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check envelope.
func Health(c echo.Context) error {
	return OK(c, &HealthResponse{
		Status: "ok",
	})
}

// SearchResults writes a 200 OK envelope with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return OK(c, results)
}

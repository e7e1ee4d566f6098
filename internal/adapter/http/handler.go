// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-app/flight-search-tool/internal/adapter/http/response"
	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/usecase"
)

// FlightHandler answers the flight search endpoints, translating between
// the HTTP surface and the use case layer.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a handler backed by the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for available flights on a route with optional filtering and sorting
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchEnvelope
// @Failure 400 {object} SwaggerErrorEnvelope "Validation error"
// @Failure 502 {object} SwaggerErrorEnvelope "Provider failure"
// @Failure 504 {object} SwaggerErrorEnvelope "Request timed out"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	params := ToSearchParams(&req)
	opts := ToSearchOptions(&req)

	result, err := h.useCase.Search(c.Request().Context(), params, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// handleValidationError handles request validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	// Domain-level validation that slipped past request validation
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Context errors take precedence over the provider wrapper so a
	// cancelled search reads as a timeout, not an upstream failure.
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Upstream provider failure: network, non-2xx, or schema mismatch
	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		return response.ProviderError(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} SwaggerHealthEnvelope
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

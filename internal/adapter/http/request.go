// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "OSL")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "PER")
	Destination string `json:"destination"`

	// Date is the departure date in YYYY-MM-DD format. Exactly one of
	// Date and DateRange must be set.
	Date string `json:"date,omitempty"`

	// DateRange is an inclusive departure date range in
	// YYYY-MM-DD:YYYY-MM-DD format. Exactly one of Date and DateRange
	// must be set.
	DateRange string `json:"date_range,omitempty"`

	// Adults is the number of adult passengers, 1-9 (optional, defaults to 1)
	Adults int `json:"adults,omitempty"`

	// Cabin is the cabin class: economy, premium_economy, business, first (optional)
	Cabin string `json:"cabin,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price, duration, departure
	SortBy string `json:"sort_by,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"airlines": ["QR", "Emirates"], "max_price": 9000, "departure_window": "06:00-12:00"}
type FilterDTO struct {
	// Airlines keeps only flights operated by one of these airlines.
	// Entries may be IATA codes or display names; names are resolved
	// against the known airline table.
	Airlines []string `json:"airlines,omitempty"`

	// MaxPrice keeps only flights priced at or below this amount
	MaxPrice *float64 `json:"max_price,omitempty" example:"9000"`

	// DepartureWindow keeps only flights whose first segment departs
	// within this time-of-day window (HH:MM-HH:MM format)
	DepartureWindow string `json:"departure_window,omitempty" example:"06:00-12:00"`
}

// airportCodePattern validates 3-letter IATA airport codes.
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Valid cabin classes. Empty is valid and defaults to economy.
var validCabins = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true,
}

// Valid sort options. Empty is valid and defaults to price.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true,
}

// ValidationError names the request field that failed a check and why.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed check so the caller sees the
// full list in one response.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error returns the first failure message, or a generic one when empty.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add records a failed check for a field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors reports whether any check failed.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap keys the messages by field for the error envelope's details.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and returns a *ValidationErrors when any
// field fails. On success the origin and destination are left uppercased
// in place, ready for the provider layer.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDates(errs)
	r.validateAdults(errs)
	r.validateCabin(errs)
	r.validateSortBy(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchFlightsRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

// validateDates enforces that exactly one of date and date_range is set
// and that the one given parses.
func (r *SearchFlightsRequest) validateDates(errs *ValidationErrors) {
	if r.Date == "" && r.DateRange == "" {
		errs.Add("date", "either date or date_range is required")
		return
	}
	if r.Date != "" && r.DateRange != "" {
		errs.Add("date", "provide either date or date_range, not both")
		return
	}

	if r.Date != "" {
		if _, err := domain.ParseDateOrRange(r.Date); err != nil {
			errs.Add("date", "date must be a valid date in YYYY-MM-DD format")
		}
		return
	}

	if _, err := domain.ParseDateOrRange(r.DateRange); err != nil {
		errs.Add("date_range", "date_range must be valid dates in YYYY-MM-DD or YYYY-MM-DD:YYYY-MM-DD format")
	}
}

func (r *SearchFlightsRequest) validateAdults(errs *ValidationErrors) {
	if r.Adults < 0 {
		errs.Add("adults", "adults must be at least 1")
		return
	}
	if r.Adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
}

func (r *SearchFlightsRequest) validateCabin(errs *ValidationErrors) {
	if !validCabins[strings.ToLower(r.Cabin)] {
		errs.Add("cabin", "cabin must be one of: economy, premium_economy, business, first")
	}
}

func (r *SearchFlightsRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sort_by", "sort_by must be one of: price, duration, departure")
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.max_price", "max_price must be a positive number")
	}

	// Airline entries may be codes or free-form names; unknown values
	// still filter verbatim, so only the window needs shape checking.
	if r.Filters.DepartureWindow != "" {
		if _, err := domain.ParseTimeWindow(r.Filters.DepartureWindow); err != nil {
			errs.Add("filters.departure_window", "departure_window must be in HH:MM-HH:MM format with valid hours (00-23) and minutes (00-59)")
		}
	}
}

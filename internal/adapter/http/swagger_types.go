// Package http provides swagger type definitions for API documentation.
// These types mirror the response DTOs with concrete Data payloads so swag
// can generate proper schemas for the generic envelope.
package http

// SwaggerSearchEnvelope is the successful search response envelope.
// @Description Flight search results wrapped in the standard envelope
type SwaggerSearchEnvelope struct {
	// Success is always true for successful responses
	Success bool `json:"success" example:"true"`

	// Data contains the search results
	Data SwaggerSearchResponse `json:"data"`
}

// SwaggerHealthEnvelope is the health check response envelope.
// @Description Health status wrapped in the standard envelope
type SwaggerHealthEnvelope struct {
	// Success is always true for successful responses
	Success bool `json:"success" example:"true"`

	// Data contains the health status
	Data SwaggerHealthStatus `json:"data"`
}

// SwaggerHealthStatus is the health check payload.
// @Description Health status of the service
type SwaggerHealthStatus struct {
	Status string `json:"status" example:"ok"`
}

// SwaggerSearchResponse represents the search results payload.
// @Description Flight search results with echoed parameters and metadata
type SwaggerSearchResponse struct {
	// SearchParams echoes the search parameters
	SearchParams SwaggerSearchParams `json:"search_params"`

	// Metadata contains information about the search execution
	Metadata SwaggerSearchMetadata `json:"metadata"`

	// Flights contains the flight results after filtering and sorting
	Flights []SwaggerFlight `json:"flights"`
}

// SwaggerSearchParams echoes the search parameters in the response.
// @Description The parameters the search was executed with
type SwaggerSearchParams struct {
	Origin        string `json:"origin" example:"OSL"`
	Destination   string `json:"destination" example:"PER"`
	DepartureDate string `json:"departure_date" example:"2025-12-10"`
	ReturnDate    string `json:"return_date,omitempty" example:"2025-12-20"`
	Adults        int    `json:"adults" example:"1"`
	Cabin         string `json:"cabin" example:"economy"`
}

// SwaggerSearchMetadata contains metadata about the search execution.
// @Description Metadata about the search execution
type SwaggerSearchMetadata struct {
	// Provider is the name of the provider that served the search
	Provider string `json:"provider" example:"mock"`

	// TotalResults is the number of flights returned after filtering
	TotalResults int `json:"total_results" example:"3"`

	// TotalBeforeFilter is the number of flights before filtering
	TotalBeforeFilter int `json:"total_before_filter" example:"6"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms" example:"245"`
}

// SwaggerFlight represents a single flight result.
// @Description One priced itinerary with raw and formatted values
type SwaggerFlight struct {
	// PriceTotal is the total itinerary price
	PriceTotal float64 `json:"price_total" example:"8950"`

	// PricePerPerson is the price divided by the adult count
	PricePerPerson float64 `json:"price_per_person" example:"8950"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"NOK"`

	// Airlines lists the airlines involved in the itinerary
	Airlines []SwaggerAirline `json:"airlines"`

	// Departure is the first segment's departure time
	Departure string `json:"departure,omitempty" example:"2025-12-10T07:30:00+01:00"`

	// Arrival is the last segment's arrival time
	Arrival string `json:"arrival,omitempty" example:"2025-12-11T01:05:00+08:00"`

	// DurationMinutes is the summed segment duration in minutes
	DurationMinutes int `json:"duration_minutes" example:"665"`

	// Duration is the human-readable duration
	Duration string `json:"duration" example:"11h 5m"`

	// Stops is the number of stops (0 = non-stop)
	Stops int `json:"stops" example:"1"`

	// StopsLabel is the human-readable stop count
	StopsLabel string `json:"stops_label" example:"1 stop"`

	// Segments lists the legs of the itinerary in order
	Segments []SwaggerSegment `json:"segments"`

	// BookingLink is an optional deep link for booking
	BookingLink string `json:"booking_link,omitempty" example:"https://www.kiwi.com/deep?booking=abc123"`
}

// SwaggerAirline pairs an airline code with its display name.
// @Description Airline code and display name
type SwaggerAirline struct {
	// Code is the IATA airline code
	Code string `json:"code" example:"QR"`

	// Name is the airline display name
	Name string `json:"name" example:"Qatar Airways"`
}

// SwaggerSegment represents one leg of an itinerary.
// @Description One operated leg between two airports
type SwaggerSegment struct {
	// From is the IATA code of the departure airport
	From string `json:"from" example:"OSL"`

	// To is the IATA code of the arrival airport
	To string `json:"to" example:"DOH"`

	// Departure is the local departure time
	Departure string `json:"departure" example:"2025-12-10T07:30:00+01:00"`

	// Arrival is the local arrival time
	Arrival string `json:"arrival" example:"2025-12-10T14:25:00+01:00"`

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int `json:"duration_minutes" example:"415"`

	// Duration is the human-readable leg duration
	Duration string `json:"duration" example:"6h 55m"`

	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flight_number" example:"QR 176"`

	// Airline is the operating airline
	Airline SwaggerAirline `json:"airline"`
}

// SwaggerErrorEnvelope is the failing response envelope.
// @Description Error response from the API
type SwaggerErrorEnvelope struct {
	// Success is false on every error response
	Success bool `json:"success" example:"false"`

	// Error carries the failure details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail is the failure half of the envelope.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a stable identifier clients can branch on
	Code string `json:"code" example:"validation_error"`

	// Message is the human-readable account of the failure
	Message string `json:"message" example:"Request validation failed"`

	// Details maps request fields to messages for validation failures
	Details map[string]string `json:"details,omitempty"`
}

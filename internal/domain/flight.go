// Package domain contains the core business entities and rules for the flight search tool.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"strconv"
	"time"
)

// FlightSegment represents one operated leg of a journey between two airports.
type FlightSegment struct {
	// From is the IATA code of the departure airport (e.g., "OSL")
	From string `json:"from"`

	// To is the IATA code of the arrival airport (e.g., "DOH")
	To string `json:"to"`

	// Departure is the timezone-aware local departure time
	Departure time.Time `json:"departure"`

	// Arrival is the timezone-aware local arrival time
	Arrival time.Time `json:"arrival"`

	// DurationMinutes is the leg duration in minutes, never negative
	DurationMinutes int `json:"durationMinutes"`

	// FlightNumber is the airline's flight number (e.g., "QR 175")
	FlightNumber string `json:"flightNumber"`

	// AirlineCode is the IATA code of the operating airline (e.g., "QR")
	AirlineCode string `json:"airlineCode"`
}

// NewFlightSegment builds a segment and enforces the duration invariant:
// when the source supplies no duration (zero or negative), it is derived
// from arrival minus departure, floored at zero.
func NewFlightSegment(from, to string, departure, arrival time.Time, durationMinutes int, flightNumber, airlineCode string) FlightSegment {
	if durationMinutes <= 0 {
		durationMinutes = int(arrival.Sub(departure).Minutes())
		if durationMinutes < 0 {
			durationMinutes = 0
		}
	}

	return FlightSegment{
		From:            from,
		To:              to,
		Departure:       departure,
		Arrival:         arrival,
		DurationMinutes: durationMinutes,
		FlightNumber:    flightNumber,
		AirlineCode:     airlineCode,
	}
}

// Flight represents one priced itinerary composed of ordered segments.
// A Flight is constructed once per raw provider record and never mutated
// afterward; only a list of Flights is reordered by sorting.
type Flight struct {
	// PriceTotal is the total itinerary price, never negative
	PriceTotal float64 `json:"priceTotal"`

	// Currency is the ISO 4217 currency code (e.g., "NOK")
	Currency string `json:"currency"`

	// Segments is the ordered list of legs; empty flights are not displayable
	Segments []FlightSegment `json:"segments"`

	// AirlineCodes is the deduplicated set of airlines involved in the itinerary
	AirlineCodes []string `json:"airlineCodes"`

	// BookingLink is an optional deep link for booking this itinerary
	BookingLink string `json:"bookingLink,omitempty"`
}

// NewFlight builds a Flight. When the caller passes no airline codes but
// segments are present, the codes are derived from the distinct segment
// airlines in first-encounter order.
func NewFlight(priceTotal float64, currency string, airlineCodes []string, segments []FlightSegment, bookingLink string) Flight {
	if len(airlineCodes) == 0 && len(segments) > 0 {
		airlineCodes = distinctAirlineCodes(segments)
	}

	return Flight{
		PriceTotal:   priceTotal,
		Currency:     currency,
		Segments:     segments,
		AirlineCodes: airlineCodes,
		BookingLink:  bookingLink,
	}
}

// distinctAirlineCodes collects non-empty segment airline codes, deduplicated,
// preserving first-encounter order.
func distinctAirlineCodes(segments []FlightSegment) []string {
	seen := make(map[string]struct{}, len(segments))
	codes := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.AirlineCode == "" {
			continue
		}
		if _, ok := seen[seg.AirlineCode]; ok {
			continue
		}
		seen[seg.AirlineCode] = struct{}{}
		codes = append(codes, seg.AirlineCode)
	}
	return codes
}

// TotalDurationMinutes returns the sum of all segment durations.
func (f Flight) TotalDurationMinutes() int {
	total := 0
	for _, seg := range f.Segments {
		total += seg.DurationMinutes
	}
	return total
}

// Stops returns the number of stops in the itinerary (0 = non-stop).
func (f Flight) Stops() int {
	if len(f.Segments) <= 1 {
		return 0
	}
	return len(f.Segments) - 1
}

// DepartureTime returns the first segment's departure, or the zero time
// for a flight without segments.
func (f Flight) DepartureTime() time.Time {
	if len(f.Segments) == 0 {
		return time.Time{}
	}
	return f.Segments[0].Departure
}

// ArrivalTime returns the last segment's arrival, or the zero time for a
// flight without segments.
func (f Flight) ArrivalTime() time.Time {
	if len(f.Segments) == 0 {
		return time.Time{}
	}
	return f.Segments[len(f.Segments)-1].Arrival
}

// FormatDuration renders minutes as "{h}h {m}m" using integer floor
// division. No rounding and no zero special-case: 0 renders as "0h 0m".
func FormatDuration(minutes int) string {
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}

// FormatStops renders the stop count of an itinerary: "non-stop" for a
// single segment, "1 stop" for two, "{n} stops" otherwise.
func FormatStops(segments []FlightSegment) string {
	stops := len(segments) - 1
	switch {
	case stops <= 0:
		return "non-stop"
	case stops == 1:
		return "1 stop"
	default:
		return strconv.Itoa(stops) + " stops"
	}
}

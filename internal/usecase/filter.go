// Package usecase provides the business logic for flight search operations.
package usecase

import (
	"github.com/travel-app/flight-search-tool/internal/domain"
)

// FilterFlights applies the given filter options to a list of flights.
// It returns a new slice containing only flights that match all active
// criteria.
//
// Behavior:
//   - Returns the input slice unchanged (same backing array, same order)
//     when opts is nil or carries no active criteria
//   - Criteria combine with AND; all boundaries are inclusive
//   - Does NOT mutate the original flights slice
//   - Performance is O(n) where n = number of flights
//
// Example usage:
//
//	maxPrice := float64(9000)
//	opts := &domain.FilterOptions{MaxPrice: &maxPrice}
//	filtered := usecase.FilterFlights(flights, opts)
func FilterFlights(flights []domain.Flight, opts *domain.FilterOptions) []domain.Flight {
	if opts == nil || !opts.HasActiveCriteria() {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if opts.MatchesFlight(f) {
			result = append(result, f)
		}
	}

	return result
}

// FilterByAirlines keeps flights operated by at least one of the given
// airlines. Returns all flights if the slice is nil or empty.
// Matching is case-insensitive on the filter side.
func FilterByAirlines(flights []domain.Flight, airlines []string) []domain.Flight {
	if len(airlines) == 0 {
		return flights
	}
	return FilterFlights(flights, &domain.FilterOptions{Airlines: airlines})
}

// FilterByMaxPrice keeps flights with a total price at or below the ceiling.
// Returns all flights if maxPrice is nil.
func FilterByMaxPrice(flights []domain.Flight, maxPrice *float64) []domain.Flight {
	if maxPrice == nil {
		return flights
	}
	return FilterFlights(flights, &domain.FilterOptions{MaxPrice: maxPrice})
}

// FilterByDepartureWindow keeps flights whose first leg departs inside the
// time-of-day window. Returns all flights if window is nil. Flights without
// segments are excluded because the criterion cannot be evaluated for them.
func FilterByDepartureWindow(flights []domain.Flight, window *domain.TimeRange) []domain.Flight {
	if window == nil {
		return flights
	}
	return FilterFlights(flights, &domain.FilterOptions{DepartureWindow: window})
}

// FilterByDates keeps flights whose first leg departs on a date inside the
// range. Returns all flights if dates is nil. Flights without segments are
// excluded because the criterion cannot be evaluated for them.
func FilterByDates(flights []domain.Flight, dates *domain.DateRange) []domain.Flight {
	if dates == nil {
		return flights
	}
	return FilterFlights(flights, &domain.FilterOptions{Dates: dates})
}

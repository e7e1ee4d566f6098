// Package usecase provides the business logic for flight search operations.
package usecase

import (
	"sort"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

// SortFlights sorts flights according to the specified sort option.
// Uses stable sorting so that flights comparing equal keep their
// original relative order.
//
// Sort options:
//   - SortByPrice (default): ascending by PriceTotal (cheapest first)
//   - SortByDuration: ascending by total itinerary duration (shortest first)
//   - SortByDeparture: ascending by first-leg departure (earliest first)
//
// Behavior:
//   - Sorts IN PLACE and returns the same slice; the caller's sequence
//     is consumed and must not be relied on as the pre-sort order
//   - Empty or invalid sortBy defaults to SortByPrice
//   - Flights without segments sort with zero duration and the zero
//     departure time, so they surface first rather than panicking
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	if len(flights) <= 1 {
		return flights
	}

	if sortBy == "" || !sortBy.IsValid() {
		sortBy = domain.SortByPrice
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].PriceTotal < flights[j].PriceTotal
		})
	case domain.SortByDuration:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].TotalDurationMinutes() < flights[j].TotalDurationMinutes()
		})
	case domain.SortByDeparture:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureTime().Before(flights[j].DepartureTime())
		})
	}

	return flights
}

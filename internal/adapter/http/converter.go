// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"strings"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/usecase"
)

const isoDateLayout = "2006-01-02"

// ToSearchParams converts a validated SearchFlightsRequest to the
// provider-facing domain.SearchParams. A date range maps to a departure
// on the range start and a return on the range end, matching the
// round-trip interpretation providers expect.
func ToSearchParams(req *SearchFlightsRequest) domain.SearchParams {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	params := domain.SearchParams{
		Origin:      strings.ToUpper(req.Origin),
		Destination: strings.ToUpper(req.Destination),
		Adults:      adults,
		Cabin:       domain.ParseCabinClass(req.Cabin),
	}

	if dates := requestedDates(req); dates != nil {
		params.DepartureDate = dates.Start.Format(isoDateLayout)
		if !dates.End.IsZero() {
			params.ReturnDate = dates.End.Format(isoDateLayout)
		}
	}

	return params
}

// ToSearchOptions converts request fields to usecase.SearchOptions. The
// requested date or date range always becomes an active date filter, so
// providers that ignore dates in their dataset still return only flights
// on the requested days.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	filters := &domain.FilterOptions{
		Dates: requestedDates(req),
	}

	if req.Filters != nil {
		filters.Airlines = domain.NormalizeAirlineCodes(strings.Join(req.Filters.Airlines, ","))
		filters.MaxPrice = req.Filters.MaxPrice
		// Window shape was checked during validation; a parse failure
		// here leaves the criterion inactive.
		filters.DepartureWindow, _ = domain.ParseTimeWindow(req.Filters.DepartureWindow)
	}

	return usecase.SearchOptions{
		Filters: filters,
		SortBy:  domain.ParseSortOption(req.SortBy),
	}
}

// requestedDates parses whichever of date and date_range is set. Returns
// nil when neither parses; validation has already rejected that case.
func requestedDates(req *SearchFlightsRequest) *domain.DateRange {
	raw := req.Date
	if raw == "" {
		raw = req.DateRange
	}
	if raw == "" {
		return nil
	}

	dates, err := domain.ParseDateOrRange(raw)
	if err != nil {
		return nil
	}
	return dates
}

// Package usecase contains the business logic for flight search operations.
// It validates the request, queries the configured provider, then applies
// filtering and sorting to the results.
package usecase

import "github.com/travel-app/flight-search-tool/internal/domain"

// SearchOptions carries the optional knobs of a search: result filters and
// the sort order. The zero value means no filtering and the default sort.
type SearchOptions struct {
	// Filters narrows the result set after the provider answers; nil
	// applies no filtering
	Filters *domain.FilterOptions

	// SortBy orders the results; unknown values fall back to price
	SortBy domain.SortOption
}

// DefaultSearchOptions returns the options used when the caller supplies
// none: no filters, price-ascending order.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByPrice,
	}
}

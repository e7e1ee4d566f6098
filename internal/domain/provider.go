package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightProvider is the capability contract implemented by every flight
// backend: the file-backed mock and the live API variants. Selection
// between variants happens once at startup; the rest of the system only
// sees this interface.
type FlightProvider interface {
	// Name returns the provider identifier used in logs and search metadata.
	Name() string

	// Search returns raw flight offers for the given parameters. The
	// offers are unfiltered and unsorted; narrowing and ordering belong
	// to the caller. A live variant returns a ProviderError on network,
	// API, or schema failures and never substitutes mock data on its own.
	Search(ctx context.Context, params SearchParams) ([]Flight, error)
}

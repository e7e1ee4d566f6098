// Package skyscanner holds the placeholder for a future Skyscanner-backed
// provider. The variant exists in the selection set but has no working
// implementation; every search reports ErrNotImplemented. The factory
// resolves a SKYSCANNER selection to the mock fallback instead, so this
// adapter is only reached when constructed directly.
//
// TODO: implement the session-based search flow (create session, poll
// results, map carriers and place codes) once API access is sorted out.
package skyscanner

import (
	"context"
	"fmt"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

// ProviderName is the unique identifier for the Skyscanner provider.
const ProviderName = "skyscanner"

// Adapter is the unimplemented Skyscanner provider.
type Adapter struct {
	apiKey string
}

// NewAdapter creates the stub. The key is held so a future implementation
// has the same construction surface as the live providers.
func NewAdapter(apiKey string) *Adapter {
	return &Adapter{apiKey: apiKey}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider by reporting the variant as
// unimplemented.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	return nil, domain.NewProviderError(ProviderName,
		fmt.Errorf("%w: set PROVIDER=MOCK or use another provider", domain.ErrNotImplemented))
}

// Ensure Adapter implements the provider contract at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)

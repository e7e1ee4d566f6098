package skyscanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

// TestAdapter_Name tests the Name method.
func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter("test-key")
	assert.Equal(t, "skyscanner", adapter.Name())
}

// TestAdapter_ImplementsInterface ensures Adapter implements FlightProvider.
func TestAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.FlightProvider = (*Adapter)(nil)
}

// TestAdapter_Search_NotImplemented verifies the stub reports itself as
// unimplemented rather than returning data.
func TestAdapter_Search_NotImplemented(t *testing.T) {
	adapter := NewAdapter("test-key")

	flights, err := adapter.Search(context.Background(), domain.SearchParams{
		Origin:        "OSL",
		Destination:   "PER",
		DepartureDate: "2025-12-10",
		Adults:        1,
	})

	require.Error(t, err)
	assert.Empty(t, flights)

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, ProviderName, providerErr.Provider)
	assert.True(t, domain.IsNotImplemented(err))
}

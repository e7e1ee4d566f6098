// Package mock implements the file-backed flight provider. It exists so the
// tool stays usable without credentials for any live API.
package mock

import (
	"context"
	"encoding/json"
	"os"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the mock provider.
const ProviderName = "mock"

// DefaultDataPath is the dataset location used when none is configured.
const DefaultDataPath = "data/mock_osl_per.json"

// Adapter serves flights from an on-disk JSON dataset. The dataset is loaded
// once at construction and read-only afterwards.
type Adapter struct {
	flights []domain.Flight
	log     *logger.Logger
}

// NewAdapter creates a mock provider backed by the dataset at dataPath.
// A missing or malformed dataset yields an empty result set with a logged
// warning, never a construction failure.
func NewAdapter(dataPath string, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	if dataPath == "" {
		dataPath = DefaultDataPath
	}

	a := &Adapter{log: log.WithProvider(ProviderName)}
	a.flights = a.loadDataset(dataPath)
	return a
}

// loadDataset reads and normalizes the dataset file.
func (a *Adapter) loadDataset(path string) []domain.Flight {
	raw, err := os.ReadFile(path)
	if err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("mock dataset not readable, starting with empty result set")
		return nil
	}

	var doc datasetDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("mock dataset is not valid JSON, starting with empty result set")
		return nil
	}

	return a.normalize(doc.Flights)
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search implements domain.FlightProvider. The dataset is narrowed to the
// requested route when origin/destination are set, so one file can hold
// several routes. A fresh slice is handed out on every call so the caller
// may reorder it without touching the loaded dataset.
func (a *Adapter) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	out := make([]domain.Flight, 0, len(a.flights))
	for _, f := range a.flights {
		if matchesRoute(f, params) {
			out = append(out, f)
		}
	}
	return out, nil
}

// matchesRoute reports whether the flight serves the requested route. Empty
// origin/destination match everything; a segmentless flight has no route and
// only matches when neither endpoint is requested.
func matchesRoute(f domain.Flight, params domain.SearchParams) bool {
	if params.Origin == "" && params.Destination == "" {
		return true
	}
	if len(f.Segments) == 0 {
		return false
	}
	if params.Origin != "" && f.Segments[0].From != params.Origin {
		return false
	}
	if params.Destination != "" && f.Segments[len(f.Segments)-1].To != params.Destination {
		return false
	}
	return true
}

// Ensure Adapter implements the provider contract at compile time.
var _ domain.FlightProvider = (*Adapter)(nil)

package usecase

import (
	"context"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/metrics"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/timeutil"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates the parameters, queries the configured provider and
	// returns the filtered, sorted results.
	Search(ctx context.Context, params domain.SearchParams, opts SearchOptions) (*domain.SearchResponse, error)
}

// flightSearchUseCase implements FlightSearchUseCase against a single provider.
type flightSearchUseCase struct {
	provider domain.FlightProvider
	clock    timeutil.Clock
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// Config contains optional collaborators for the use case.
type Config struct {
	// Clock supplies timestamps for latency measurement. Defaults to the
	// system clock.
	Clock timeutil.Clock

	// Logger receives structured search logs. Defaults to a no-op logger.
	Logger *logger.Logger

	// Metrics, when set, records search counters and latency histograms.
	Metrics *metrics.Metrics
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase backed by the
// given provider. If config is nil, the system clock and a no-op logger
// are used.
func NewFlightSearchUseCase(provider domain.FlightProvider, config *Config) FlightSearchUseCase {
	uc := &flightSearchUseCase{
		provider: provider,
		clock:    timeutil.NewRealClock(),
		log:      logger.Nop(),
	}
	if config != nil {
		if config.Clock != nil {
			uc.clock = config.Clock
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
		uc.metrics = config.Metrics
	}
	return uc
}

// Search implements FlightSearchUseCase.Search.
//
// The pipeline is: apply parameter defaults, validate, query the provider,
// filter, sort, build the response. Provider errors are returned as-is so
// callers can distinguish a ProviderError from an invalid request. An empty
// result set is not an error.
func (uc *flightSearchUseCase) Search(ctx context.Context, params domain.SearchParams, opts SearchOptions) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	params.SetDefaults()
	if err := params.Validate(); err != nil {
		uc.log.Debug().Err(err).Msg("rejected search request")
		return nil, err
	}

	providerName := uc.provider.Name()
	log := uc.log.WithProvider(providerName)

	flights, err := uc.provider.Search(ctx, params)
	if err != nil {
		elapsed := uc.clock.Now().Sub(start)
		log.Error().Err(err).Msg("provider search failed")
		uc.metrics.ObserveSearch(providerName, elapsed.Seconds(), 0, err)
		return nil, err
	}

	totalBeforeFilter := len(flights)
	filtered := FilterFlights(flights, opts.Filters)
	sorted := SortFlights(filtered, opts.SortBy)

	elapsed := uc.clock.Now().Sub(start)

	response := domain.NewSearchResponse(&params, sorted, domain.SearchMetadata{
		Provider:          providerName,
		TotalBeforeFilter: totalBeforeFilter,
		SearchTimeMs:      elapsed.Milliseconds(),
	})

	log.Info().
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Int("results", len(sorted)).
		Int("before_filter", totalBeforeFilter).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("search completed")
	uc.metrics.ObserveSearch(providerName, elapsed.Seconds(), len(sorted), nil)

	return &response, nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)

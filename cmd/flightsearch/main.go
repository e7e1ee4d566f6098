// Package main implements flightsearch, a one-shot command-line client
// for the flight search engine. It searches via the configured provider,
// applies filters and sorting, and prints the results as a table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/travel-app/flight-search-tool/internal/adapter/provider"
	"github.com/travel-app/flight-search-tool/internal/config"
	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/logger"
	"github.com/travel-app/flight-search-tool/internal/usecase"
)

const isoDateLayout = "2006-01-02"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}

	var (
		from      = flag.String("from", cfg.Search.Origin, "origin airport code")
		to        = flag.String("to", cfg.Search.Destination, "destination airport code")
		date      = flag.String("date", "", "departure date (YYYY-MM-DD)")
		dateRange = flag.String("date-range", "", "date range (YYYY-MM-DD:YYYY-MM-DD)")
		adults    = flag.Int("adults", 1, "number of adult passengers")
		cabin     = flag.String("cabin", "economy", "cabin class (economy, premium_economy, business, first)")
		maxPrice  = flag.Float64("max-price", 0, "maximum total price (0 means no cap)")
		airlines  = flag.String("airlines", "", "comma-separated airline codes or names (e.g. QR,EK)")
		depWindow = flag.String("dep-window", "", "departure time window (HH:MM-HH:MM)")
		sortBy    = flag.String("sort", "price", "sort order: price, duration, departure")
	)
	flag.Parse()

	// Exactly one of -date and -date-range selects the travel dates
	if *date == "" && *dateRange == "" {
		fatalf("Please specify either -date or -date-range")
	}
	if *date != "" && *dateRange != "" {
		fatalf("Please specify either -date or -date-range, not both")
	}

	rawDates := *date
	if rawDates == "" {
		rawDates = *dateRange
	}
	dates, err := domain.ParseDateOrRange(rawDates)
	if err != nil {
		fatalf("Invalid date format: %v", err)
	}

	window, err := domain.ParseTimeWindow(*depWindow)
	if err != nil {
		fatalf("Invalid departure window: %v", err)
	}

	filters := &domain.FilterOptions{
		Airlines:        domain.NormalizeAirlineCodes(*airlines),
		DepartureWindow: window,
		Dates:           dates,
	}
	if *maxPrice > 0 {
		filters.MaxPrice = maxPrice
	}

	// A date range searches as a round trip: depart at the start of the
	// range, return at the end.
	params := domain.SearchParams{
		Origin:        strings.ToUpper(*from),
		Destination:   strings.ToUpper(*to),
		DepartureDate: dates.Start.Format(isoDateLayout),
		Adults:        *adults,
		Cabin:         domain.ParseCabinClass(*cabin),
	}
	if !dates.End.IsZero() {
		params.ReturnDate = dates.End.Format(isoDateLayout)
	}

	// Console logs go to stderr so the result table on stdout stays clean
	log := logger.NewCLI(cfg.Logging.Level)
	flightProvider := provider.New(cfg.Provider, cfg.Search.Currency, log)

	fmt.Printf("Searching flights using %s...\n", flightProvider.Name())

	searcher := usecase.NewFlightSearchUseCase(flightProvider, &usecase.Config{Logger: log})
	resp, err := searcher.Search(context.Background(), params, usecase.SearchOptions{
		Filters: filters,
		SortBy:  domain.ParseSortOption(*sortBy),
	})
	if err != nil {
		fatalf("Error searching flights: %v", err)
	}

	fmt.Printf("Found %d flights (from %d total)\n",
		resp.Metadata.TotalResults, resp.Metadata.TotalBeforeFilter)

	renderTable(os.Stdout, resp.Flights)
}

// fatalf prints an error to stderr and exits non-zero.
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

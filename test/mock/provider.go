// Package mock provides configurable provider doubles for integration
// tests: canned flights, injected errors, and artificial latency.
package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/travel-app/flight-search-tool/internal/domain"
)

// Provider is a domain.FlightProvider double built up with the WithX
// methods. Zero delay answers immediately; a configured delay makes
// cancellation paths testable.
type Provider struct {
	name    string
	flights []domain.Flight
	err     error
	delay   time.Duration
	calls   atomic.Int64
}

// NewProvider creates a provider double answering to the given name.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithFlights sets the flights every Search call returns.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.flights = flights
	return p
}

// WithError makes every Search call fail with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay makes Search wait before answering. The wait honors
// cancellation, so callers can assert context behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.FlightProvider with the configured behavior.
func (p *Provider) Search(ctx context.Context, params domain.SearchParams) ([]domain.Flight, error) {
	p.calls.Add(1)

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.flights, nil
}

// CallCount returns how many times Search ran.
func (p *Provider) CallCount() int {
	return int(p.calls.Load())
}

// Reset zeroes the call counter.
func (p *Provider) Reset() {
	p.calls.Store(0)
}

// Ensure Provider implements domain.FlightProvider at compile time.
var _ domain.FlightProvider = (*Provider)(nil)

// SampleFlights returns count one-stop OSL->PER itineraries with ascending
// prices and departure times. All required fields carry realistic values.
func SampleFlights(count int) []domain.Flight {
	flights := make([]domain.Flight, count)

	base := time.Date(2025, 12, 10, 6, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		dep := base.Add(time.Duration(i*2) * time.Hour)
		legOne := domain.NewFlightSegment("OSL", "DOH",
			dep, dep.Add(415*time.Minute),
			415, fmt.Sprintf("QR %d", 170+i), "QR")
		legTwo := domain.NewFlightSegment("DOH", "PER",
			dep.Add(8*time.Hour), dep.Add(8*time.Hour+675*time.Minute),
			675, fmt.Sprintf("QR %d", 900+i), "QR")

		flights[i] = domain.NewFlight(
			8000+float64(i)*500, "NOK", nil,
			[]domain.FlightSegment{legOne, legTwo},
			fmt.Sprintf("https://booking.example.com/osl-per/%d", i+1),
		)
	}

	return flights
}

package kiwi

import (
	"fmt"
	"time"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/timeutil"
)

// fallbackCurrency is assumed when a record carries no currency field.
const fallbackCurrency = "EUR"

// normalize converts Tequila itineraries into domain Flights. Records that
// cannot be normalized are skipped with a warning; the rest of the batch
// is still returned.
func (a *Adapter) normalize(records []itineraryRecord) []domain.Flight {
	flights := make([]domain.Flight, 0, len(records))

	for i, rec := range records {
		flight, err := normalizeRecord(rec)
		if err != nil {
			a.log.Warn().Err(err).Int("record", i).Msg("skipping malformed itinerary record")
			continue
		}
		flights = append(flights, flight)
	}

	return flights
}

// normalizeRecord converts one priced itinerary. Route legs carry UTC epoch
// seconds, rendered in the canonical origin timezone; per-leg duration is
// derived from arrival minus departure.
func normalizeRecord(rec itineraryRecord) (domain.Flight, error) {
	oslo := timeutil.OsloLocation()

	segments := make([]domain.FlightSegment, 0, len(rec.Route))
	for _, leg := range rec.Route {
		if err := validateLeg(leg); err != nil {
			return domain.Flight{}, err
		}

		departure := time.Unix(leg.DTimeUTC, 0).In(oslo)
		arrival := time.Unix(leg.ATimeUTC, 0).In(oslo)
		duration := int(arrival.Sub(departure).Minutes())

		segments = append(segments, domain.NewFlightSegment(
			leg.FlyFrom,
			leg.FlyTo,
			departure,
			arrival,
			duration,
			leg.FlightNo.String(),
			leg.Airline,
		))
	}

	currency := rec.Currency
	if currency == "" {
		currency = fallbackCurrency
	}

	// Airline codes are derived from the distinct leg airlines.
	return domain.NewFlight(rec.Price, currency, nil, segments, rec.DeepLink), nil
}

// validateLeg rejects legs missing the fields a segment cannot be built
// without. A record containing such a leg is dropped whole.
func validateLeg(leg routeLeg) error {
	if leg.FlyFrom == "" || leg.FlyTo == "" {
		return fmt.Errorf("route leg missing airport codes (from=%q, to=%q)", leg.FlyFrom, leg.FlyTo)
	}
	if leg.DTimeUTC == 0 || leg.ATimeUTC == 0 {
		return fmt.Errorf("route leg %s-%s missing timestamps", leg.FlyFrom, leg.FlyTo)
	}
	return nil
}

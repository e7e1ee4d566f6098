package mock

import (
	"fmt"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/timeutil"
)

// normalize converts dataset records to domain Flight entities. Records that
// cannot be normalized are skipped with a warning; the rest of the batch is
// still served.
func (a *Adapter) normalize(records []flightRecord) []domain.Flight {
	flights := make([]domain.Flight, 0, len(records))

	for i, rec := range records {
		flight, err := normalizeRecord(rec)
		if err != nil {
			a.log.Warn().Err(err).Int("record", i).Msg("skipping malformed dataset record")
			continue
		}
		flights = append(flights, flight)
	}

	return flights
}

// normalizeRecord converts a single dataset record to a domain Flight.
func normalizeRecord(rec flightRecord) (domain.Flight, error) {
	segments := make([]domain.FlightSegment, 0, len(rec.Itinerary))

	for _, seg := range rec.Itinerary {
		departure, err := timeutil.ParseFlightTime(seg.DepTimeLocal)
		if err != nil {
			return domain.Flight{}, fmt.Errorf("departure time: %w", err)
		}
		arrival, err := timeutil.ParseFlightTime(seg.ArrTimeLocal)
		if err != nil {
			return domain.Flight{}, fmt.Errorf("arrival time: %w", err)
		}

		segments = append(segments, domain.NewFlightSegment(
			seg.FromAirport,
			seg.ToAirport,
			departure,
			arrival,
			seg.DurationMinutes,
			seg.FlightNumber,
			seg.AirlineCode,
		))
	}

	return domain.NewFlight(rec.PriceTotal, rec.Currency, rec.AirlineCodes, segments, rec.BookingLink), nil
}

package amadeus

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/timeutil"
)

// durationPattern matches ISO-8601 durations of the shape the offers API
// emits. Hours and minutes are independently optional.
var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// normalize converts offers into domain Flights. Offers that cannot be
// normalized are skipped with a warning; the rest of the batch is still
// returned.
func (a *Adapter) normalize(offers []offerRecord) []domain.Flight {
	flights := make([]domain.Flight, 0, len(offers))

	for i, offer := range offers {
		flight, err := normalizeOffer(offer)
		if err != nil {
			a.log.Warn().Err(err).Int("offer", i).Msg("skipping malformed flight offer")
			continue
		}
		flights = append(flights, flight)
	}

	return flights
}

// normalizeOffer converts one priced offer. Segments from all itineraries
// (outbound and return) are flattened into a single ordered list; the
// flight number renders as "QR 900"; airline codes are the sorted distinct
// carriers.
func normalizeOffer(offer offerRecord) (domain.Flight, error) {
	price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("grand total %q: %w", offer.Price.GrandTotal, err)
	}
	if offer.Price.Currency == "" {
		return domain.Flight{}, fmt.Errorf("offer missing currency")
	}

	var segments []domain.FlightSegment
	carriers := make(map[string]struct{})

	for _, itinerary := range offer.Itineraries {
		for _, seg := range itinerary.Segments {
			if seg.CarrierCode == "" {
				return domain.Flight{}, fmt.Errorf("segment missing carrier code")
			}
			if seg.Departure.IataCode == "" || seg.Arrival.IataCode == "" {
				return domain.Flight{}, fmt.Errorf("segment missing airport codes")
			}

			departure, err := timeutil.ParseFlightTime(seg.Departure.At)
			if err != nil {
				return domain.Flight{}, fmt.Errorf("departure time: %w", err)
			}
			arrival, err := timeutil.ParseFlightTime(seg.Arrival.At)
			if err != nil {
				return domain.Flight{}, fmt.Errorf("arrival time: %w", err)
			}

			// Prefer the reported duration; zero or unparsable falls back
			// to arrival minus departure.
			duration := parseISODuration(seg.Duration)
			if duration == 0 {
				duration = int(arrival.Sub(departure).Minutes())
			}

			segments = append(segments, domain.NewFlightSegment(
				seg.Departure.IataCode,
				seg.Arrival.IataCode,
				departure,
				arrival,
				duration,
				strings.TrimSpace(seg.CarrierCode+" "+seg.Number),
				seg.CarrierCode,
			))
			carriers[seg.CarrierCode] = struct{}{}
		}
	}

	codes := make([]string, 0, len(carriers))
	for code := range carriers {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	// The offers API carries no booking deep link.
	return domain.NewFlight(price, offer.Price.Currency, codes, segments, ""), nil
}

// parseISODuration converts "PT11H5M" to minutes. A value that does not
// match the pattern yields 0.
func parseISODuration(value string) int {
	m := durationPattern.FindStringSubmatch(value)
	if m == nil {
		return 0
	}

	hours := 0
	if m[1] != "" {
		hours, _ = strconv.Atoi(m[1])
	}
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}

package http

import (
	"github.com/travel-app/flight-search-tool/internal/domain"
)

// dateTimeLayout renders segment timestamps including their zone offset.
const dateTimeLayout = "2006-01-02T15:04:05-07:00"

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchParams SearchParamsDTO `json:"search_params"`
	Metadata     MetadataDTO     `json:"metadata"`
	Flights      []FlightDTO     `json:"flights"`
}

// SearchParamsDTO echoes the search parameters in the response.
type SearchParamsDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Cabin         string `json:"cabin"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	Provider          string `json:"provider"`
	TotalResults      int    `json:"total_results"`
	TotalBeforeFilter int    `json:"total_before_filter"`
	SearchTimeMs      int64  `json:"search_time_ms"`
}

// FlightDTO is the data transfer object for one flight result. It carries
// both raw values and formatted strings so clients can render without
// reimplementing the formatting rules.
type FlightDTO struct {
	PriceTotal      float64      `json:"price_total"`
	PricePerPerson  float64      `json:"price_per_person"`
	Currency        string       `json:"currency"`
	Airlines        []AirlineDTO `json:"airlines"`
	Departure       string       `json:"departure,omitempty"`
	Arrival         string       `json:"arrival,omitempty"`
	DurationMinutes int          `json:"duration_minutes"`
	Duration        string       `json:"duration"`
	Stops           int          `json:"stops"`
	StopsLabel      string       `json:"stops_label"`
	Segments        []SegmentDTO `json:"segments"`
	BookingLink     string       `json:"booking_link,omitempty"`
}

// AirlineDTO pairs an airline code with its display name.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SegmentDTO represents one leg of an itinerary.
type SegmentDTO struct {
	From            string     `json:"from"`
	To              string     `json:"to"`
	Departure       string     `json:"departure"`
	Arrival         string     `json:"arrival"`
	DurationMinutes int        `json:"duration_minutes"`
	Duration        string     `json:"duration"`
	FlightNumber    string     `json:"flight_number"`
	Airline         AirlineDTO `json:"airline"`
}

// ToSearchResponseDTO converts a domain SearchResponse to a SearchResponseDTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &SearchResponseDTO{
		SearchParams: SearchParamsDTO{
			Origin:        resp.SearchParams.Origin,
			Destination:   resp.SearchParams.Destination,
			DepartureDate: resp.SearchParams.DepartureDate,
			ReturnDate:    resp.SearchParams.ReturnDate,
			Adults:        resp.SearchParams.Adults,
			Cabin:         resp.SearchParams.Cabin,
		},
		Metadata: MetadataDTO{
			Provider:          resp.Metadata.Provider,
			TotalResults:      resp.Metadata.TotalResults,
			TotalBeforeFilter: resp.Metadata.TotalBeforeFilter,
			SearchTimeMs:      resp.Metadata.SearchTimeMs,
		},
		Flights: make([]FlightDTO, len(resp.Flights)),
	}

	for i, flight := range resp.Flights {
		dto.Flights[i] = ToFlightDTO(&flight, resp.SearchParams.Adults)
	}

	return dto
}

// ToFlightDTO converts a domain Flight to a FlightDTO. The per-person
// price divides the total by the adult count from the search.
func ToFlightDTO(flight *domain.Flight, adults int) FlightDTO {
	if adults < 1 {
		adults = 1
	}

	totalMinutes := flight.TotalDurationMinutes()

	dto := FlightDTO{
		PriceTotal:      flight.PriceTotal,
		PricePerPerson:  flight.PriceTotal / float64(adults),
		Currency:        flight.Currency,
		Airlines:        toAirlineDTOs(flight.AirlineCodes),
		DurationMinutes: totalMinutes,
		Duration:        domain.FormatDuration(totalMinutes),
		Stops:           flight.Stops(),
		StopsLabel:      domain.FormatStops(flight.Segments),
		Segments:        make([]SegmentDTO, len(flight.Segments)),
		BookingLink:     flight.BookingLink,
	}

	// Segmentless flights have no meaningful endpoints; the timestamps
	// stay empty rather than rendering the zero time.
	if len(flight.Segments) > 0 {
		dto.Departure = flight.DepartureTime().Format(dateTimeLayout)
		dto.Arrival = flight.ArrivalTime().Format(dateTimeLayout)
	}

	for i, seg := range flight.Segments {
		dto.Segments[i] = SegmentDTO{
			From:            seg.From,
			To:              seg.To,
			Departure:       seg.Departure.Format(dateTimeLayout),
			Arrival:         seg.Arrival.Format(dateTimeLayout),
			DurationMinutes: seg.DurationMinutes,
			Duration:        domain.FormatDuration(seg.DurationMinutes),
			FlightNumber:    seg.FlightNumber,
			Airline: AirlineDTO{
				Code: seg.AirlineCode,
				Name: domain.AirlineName(seg.AirlineCode),
			},
		}
	}

	return dto
}

// toAirlineDTOs resolves display names for a list of airline codes.
func toAirlineDTOs(codes []string) []AirlineDTO {
	airlines := make([]AirlineDTO, len(codes))
	for i, code := range codes {
		airlines[i] = AirlineDTO{
			Code: code,
			Name: domain.AirlineName(code),
		}
	}
	return airlines
}

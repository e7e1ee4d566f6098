package mock

// datasetDocument is the top-level shape of the mock dataset file.
type datasetDocument struct {
	Flights []flightRecord `json:"flights"`
}

// flightRecord is one priced itinerary in the dataset.
type flightRecord struct {
	PriceTotal   float64         `json:"price_total"`
	Currency     string          `json:"currency"`
	AirlineCodes []string        `json:"airline_codes"`
	Itinerary    []segmentRecord `json:"itinerary"`
	BookingLink  string          `json:"booking_link"`
}

// segmentRecord is one leg of an itinerary. Timestamps are local values
// without a mandatory offset.
type segmentRecord struct {
	FromAirport     string `json:"from_airport"`
	ToAirport       string `json:"to_airport"`
	DepTimeLocal    string `json:"dep_time_local"`
	ArrTimeLocal    string `json:"arr_time_local"`
	DurationMinutes int    `json:"duration_minutes"`
	FlightNumber    string `json:"flight_number"`
	AirlineCode     string `json:"airline_code"`
}

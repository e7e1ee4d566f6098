package kiwi

import "encoding/json"

// searchResponse is the top-level /v2/search payload.
type searchResponse struct {
	Data []itineraryRecord `json:"data"`
}

// itineraryRecord is one priced itinerary in the search response.
type itineraryRecord struct {
	Price    float64    `json:"price"`
	Currency string     `json:"currency"`
	Route    []routeLeg `json:"route"`
	DeepLink string     `json:"deep_link"`
}

// routeLeg is one operated leg. Timestamps are UTC epoch seconds; the
// flight number arrives as a bare integer.
type routeLeg struct {
	FlyFrom  string      `json:"flyFrom"`
	FlyTo    string      `json:"flyTo"`
	DTimeUTC int64       `json:"dTimeUTC"`
	ATimeUTC int64       `json:"aTimeUTC"`
	Airline  string      `json:"airline"`
	FlightNo json.Number `json:"flight_no"`
}

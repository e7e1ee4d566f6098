package domain

// SearchResponse represents the outcome of a flight search after filtering
// and sorting.
type SearchResponse struct {
	// SearchParams echoes the original search parameters
	SearchParams SearchParamsResponse `json:"search_params"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Flights contains the list of flight results after filtering and sorting
	Flights []Flight `json:"flights"`
}

// SearchParamsResponse represents the search parameters in the response.
type SearchParamsResponse struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the optional return date; empty for one-way searches
	ReturnDate string `json:"return_date,omitempty"`

	// Adults is the number of adult passengers
	Adults int `json:"adults"`

	// Cabin is the requested cabin class
	Cabin string `json:"cabin"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// Provider is the name of the provider that served the search
	Provider string `json:"provider"`

	// TotalResults is the number of flights returned after filtering
	TotalResults int `json:"total_results"`

	// TotalBeforeFilter is the number of flights the provider returned
	// before any filtering was applied
	TotalBeforeFilter int `json:"total_before_filter"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse assembles a SearchResponse from the given parameters,
// filtered flights, and execution metadata.
func NewSearchResponse(params *SearchParams, flights []Flight, metadata SearchMetadata) SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}
	metadata.TotalResults = len(flights)

	paramsResp := SearchParamsResponse{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Adults:        params.Adults,
		Cabin:         string(params.Cabin),
	}

	return SearchResponse{
		SearchParams: paramsResp,
		Metadata:     metadata,
		Flights:      flights,
	}
}

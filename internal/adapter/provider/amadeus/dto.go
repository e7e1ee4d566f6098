package amadeus

// offersResponse is the top-level flight-offers payload.
type offersResponse struct {
	Data []offerRecord `json:"data"`
}

// offerRecord is one priced offer.
type offerRecord struct {
	Price       offerPrice       `json:"price"`
	Itineraries []offerItinerary `json:"itineraries"`
}

// offerPrice carries the total as a decimal string.
type offerPrice struct {
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

// offerItinerary is one direction of travel; a round trip carries two.
type offerItinerary struct {
	Segments []offerSegment `json:"segments"`
}

// offerSegment is one operated leg. Duration is ISO-8601 ("PT11H5M").
type offerSegment struct {
	Departure   offerEndpoint `json:"departure"`
	Arrival     offerEndpoint `json:"arrival"`
	CarrierCode string        `json:"carrierCode"`
	Number      string        `json:"number"`
	Duration    string        `json:"duration"`
}

// offerEndpoint is an airport plus a local timestamp without offset.
type offerEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

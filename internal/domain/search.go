package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// CabinClass is the closed set of fare tiers understood by the tool.
// Providers own the mapping from these values to their wire vocabulary.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// validCabins defines the allowed cabin classes.
var validCabins = map[CabinClass]bool{
	CabinEconomy:        true,
	CabinPremiumEconomy: true,
	CabinBusiness:       true,
	CabinFirst:          true,
}

// ParseCabinClass maps free-form user input to the cabin enumeration.
// Unrecognized input defaults to economy.
func ParseCabinClass(raw string) CabinClass {
	cabin := CabinClass(strings.ToLower(strings.TrimSpace(raw)))
	if !validCabins[cabin] {
		return CabinEconomy
	}
	return cabin
}

// IsValid reports whether the cabin class is one of the closed enumeration.
func (c CabinClass) IsValid() bool {
	return validCabins[c]
}

// SearchParams defines the parameters for a flight search request. They are
// passed opaquely to the selected provider; airport codes are not validated
// here beyond presence.
type SearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "OSL")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "PER")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format; empty
	// means a one-way search
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// Cabin is the requested cabin class (default: economy)
	Cabin CabinClass `json:"cabin,omitempty"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search parameters are usable.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchParams) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if err := validateDate(s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate %v", ErrInvalidRequest, err)
	}

	if s.ReturnDate != "" {
		if err := validateDate(s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate %v", ErrInvalidRequest, err)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}

	if s.Cabin != "" && !s.Cabin.IsValid() {
		return fmt.Errorf("%w: cabin must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, s.Cabin)
	}

	return nil
}

// validateDate checks the YYYY-MM-DD shape and that the value is a real date.
func validateDate(value string) error {
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("must be in YYYY-MM-DD format, got %q", value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("is not a valid date: %s", value)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchParams) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.Cabin == "" {
		s.Cabin = CabinEconomy
	}
}

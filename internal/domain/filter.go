package domain

import (
	"fmt"
	"strings"
	"time"
)

// SortOption defines the available sorting options for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by total price ascending (cheapest first, default)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by summed segment duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by first-segment departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// FilterOptions defines optional filters to apply to flight results.
// A nil field means the criterion is inactive; criteria compose by AND.
// FilterOptions are transient per search and never persisted.
type FilterOptions struct {
	// Airlines keeps flights whose airline codes intersect this set.
	// Nil or empty means no filtering by airline.
	Airlines []string `json:"airlines,omitempty"`

	// MaxPrice keeps flights priced at or below this amount (inclusive)
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// DepartureWindow keeps flights whose first segment departs within
	// this time-of-day window
	DepartureWindow *TimeRange `json:"departureWindow,omitempty"`

	// Dates keeps flights whose first segment departs on the given local
	// date, or within the given local date range
	Dates *DateRange `json:"dates,omitempty"`
}

// TimeRange represents a time-of-day window. Only the clock components of
// Start and End are significant; the window is inclusive on both ends and
// does not wrap past midnight.
type TimeRange struct {
	// Start is the beginning of the window (inclusive)
	Start time.Time `json:"start"`

	// End is the end of the window (inclusive)
	End time.Time `json:"end"`
}

// Contains checks if the time-of-day of t falls within the window.
func (tr *TimeRange) Contains(t time.Time) bool {
	if tr == nil {
		return true
	}

	// Compare minutes-of-day only; the date portions are irrelevant.
	tMinutes := t.Hour()*60 + t.Minute()
	startMinutes := tr.Start.Hour()*60 + tr.Start.Minute()
	endMinutes := tr.End.Hour()*60 + tr.End.Minute()

	return tMinutes >= startMinutes && tMinutes <= endMinutes
}

// DateRange represents a local calendar date or an inclusive date range.
// A zero End means "exactly the Start date".
type DateRange struct {
	// Start is the first acceptable date (inclusive)
	Start time.Time `json:"start"`

	// End is the last acceptable date (inclusive); zero for an exact match
	End time.Time `json:"end,omitempty"`
}

// Contains checks if the local calendar date of t falls within the range.
// The comparison uses the date components in t's own location, not UTC.
func (dr *DateRange) Contains(t time.Time) bool {
	if dr == nil {
		return true
	}

	key := dateKey(t)
	if dr.End.IsZero() {
		return key == dateKey(dr.Start)
	}
	return key >= dateKey(dr.Start) && key <= dateKey(dr.End)
}

// dateKey flattens a timestamp's local calendar date into a comparable int.
func dateKey(t time.Time) int {
	year, month, day := t.Date()
	return year*10000 + int(month)*100 + day
}

// MatchesFlight checks if a flight passes all active filter criteria.
// Criteria that inspect segment data exclude flights without segments;
// a segmentless flight passes only when no such criterion is active.
func (f *FilterOptions) MatchesFlight(flight Flight) bool {
	if f == nil {
		return true
	}

	if len(f.Airlines) > 0 && !airlinesIntersect(f.Airlines, flight.AirlineCodes) {
		return false
	}

	if f.MaxPrice != nil && flight.PriceTotal > *f.MaxPrice {
		return false
	}

	if f.DepartureWindow != nil {
		if len(flight.Segments) == 0 {
			return false
		}
		if !f.DepartureWindow.Contains(flight.Segments[0].Departure) {
			return false
		}
	}

	if f.Dates != nil {
		if len(flight.Segments) == 0 {
			return false
		}
		if !f.Dates.Contains(flight.Segments[0].Departure) {
			return false
		}
	}

	return true
}

// HasActiveCriteria reports whether any filter criterion is set.
func (f *FilterOptions) HasActiveCriteria() bool {
	if f == nil {
		return false
	}
	return len(f.Airlines) > 0 || f.MaxPrice != nil || f.DepartureWindow != nil || f.Dates != nil
}

// airlinesIntersect checks whether any flight airline code is in the filter
// set. The filter side is upper-cased here; flight codes are compared as
// stored.
func airlinesIntersect(filter, flightCodes []string) bool {
	set := make(map[string]struct{}, len(filter))
	for _, code := range filter {
		set[strings.ToUpper(code)] = struct{}{}
	}
	for _, code := range flightCodes {
		if _, ok := set[code]; ok {
			return true
		}
	}
	return false
}

// ParseTimeWindow parses a departure window string like "06:00-12:00" into
// a TimeRange. Empty input returns nil, meaning no window filter. Any other
// shape, including non-numeric or out-of-range components, fails with a
// ValidationError.
func ParseTimeWindow(raw string) (*TimeRange, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return nil, NewValidationError("depTimeBetween", fmt.Sprintf("invalid time window format: %s. Use HH:MM-HH:MM", raw))
	}

	start, err := time.Parse("15:04", strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, NewValidationError("depTimeBetween", fmt.Sprintf("invalid time window format: %s. Use HH:MM-HH:MM", raw))
	}
	end, err := time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, NewValidationError("depTimeBetween", fmt.Sprintf("invalid time window format: %s. Use HH:MM-HH:MM", raw))
	}

	return &TimeRange{Start: start, End: end}, nil
}

// ParseDateOrRange parses either a single ISO date "2025-12-10" or a
// colon-separated range "2025-12-10:2025-12-20" into a DateRange. Fails
// with a ValidationError on unparsable date text or a malformed range.
func ParseDateOrRange(raw string) (*DateRange, error) {
	if !strings.Contains(raw, ":") {
		start, err := parseISODate(raw)
		if err != nil {
			return nil, err
		}
		return &DateRange{Start: start}, nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return nil, NewValidationError("dates", fmt.Sprintf("invalid date range: %s. Use YYYY-MM-DD:YYYY-MM-DD", raw))
	}

	start, err := parseISODate(parts[0])
	if err != nil {
		return nil, err
	}
	end, err := parseISODate(parts[1])
	if err != nil {
		return nil, err
	}

	return &DateRange{Start: start, End: end}, nil
}

func parseISODate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, NewValidationError("dates", fmt.Sprintf("invalid date: %s. Use YYYY-MM-DD", value))
	}
	return parsed, nil
}

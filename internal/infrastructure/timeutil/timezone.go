// Package timeutil centralizes timezone handling and the clock abstraction
// for the search tool. Provider timestamps arrive both offset-aware and
// offset-less; the parsing helpers here anchor the latter exactly once.
package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache holds loaded timezone locations keyed by name.
var locationCache sync.Map

// Timezone names used by the search tool.
const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// TZOslo is the canonical timezone of the search origin. Timestamps
	// arriving without an explicit offset are anchored here.
	TZOslo = "Europe/Oslo"

	// TZPerth is the timezone of the default destination.
	TZPerth = "Australia/Perth"
)

// flightTimeLayout is the offset-less local timestamp layout used by
// provider payloads and the mock dataset.
const flightTimeLayout = "2006-01-02T15:04:05"

// GetLocation returns the named timezone location. Loads go through a
// process-wide cache, so repeated lookups never touch the tzdata files
// twice.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	cached, _ := locationCache.LoadOrStore(name, loc)
	return cached.(*time.Location), nil
}

// MustGetLocation is GetLocation for known-good names; it panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// OsloLocation returns the canonical origin timezone.
func OsloLocation() *time.Location {
	return MustGetLocation(TZOslo)
}

// ParseFlightTime parses a provider timestamp. Values carrying an explicit
// offset (RFC3339) keep that offset; offset-less local values are anchored
// in the canonical origin timezone. The anchoring happens here exactly
// once, so already-aware timestamps are never re-zoned.
func ParseFlightTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := ParseInTimezone(flightTimeLayout, value, TZOslo)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse flight time %q: %w", value, err)
	}
	return t, nil
}

// InTimezone converts a time to the specified timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// ParseInTimezone parses a time string in the specified timezone.
func ParseInTimezone(layout, value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, value, loc)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats a time as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ClearLocationCache empties the location cache. Tests use it to exercise
// fresh loads.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}

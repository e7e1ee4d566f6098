package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestSortOption_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		option SortOption
		want   bool
	}{
		{name: "price is valid", option: SortByPrice, want: true},
		{name: "duration is valid", option: SortByDuration, want: true},
		{name: "departure is valid", option: SortByDeparture, want: true},
		{name: "invalid option", option: SortOption("invalid"), want: false},
		{name: "empty option", option: SortOption(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SortOption
	}{
		{name: "parse price", input: "price", expected: SortByPrice},
		{name: "parse duration", input: "duration", expected: SortByDuration},
		{name: "parse departure", input: "departure", expected: SortByDeparture},
		{name: "uppercase input", input: "DURATION", expected: SortByDuration},
		{name: "invalid defaults to price", input: "invalid", expected: SortByPrice},
		{name: "empty defaults to price", input: "", expected: SortByPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortOption(tt.input))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	// Time range from 08:00 to 12:00; only the clock portion matters
	startTime := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	endTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := &TimeRange{Start: startTime, End: endTime}

	tests := []struct {
		name      string
		timeRange *TimeRange
		testTime  time.Time
		want      bool
	}{
		{
			name:      "time within range",
			timeRange: tr,
			testTime:  time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time at start boundary",
			timeRange: tr,
			testTime:  time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time at end boundary",
			timeRange: tr,
			testTime:  time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "time before range",
			timeRange: tr,
			testTime:  time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "time after range",
			timeRange: tr,
			testTime:  time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "date portion is ignored",
			timeRange: tr,
			testTime:  time.Date(1999, 2, 3, 9, 15, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "nil time range always contains",
			timeRange: nil,
			testTime:  time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.timeRange.Contains(tt.testTime))
		})
	}
}

// A window with start after end matches nothing; the window never wraps
// past midnight.
func TestTimeRange_NoMidnightWrap(t *testing.T) {
	tr := &TimeRange{
		Start: time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC),
	}

	assert.False(t, tr.Contains(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, tr.Contains(time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)))
	assert.False(t, tr.Contains(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
}

func TestDateRange_Contains(t *testing.T) {
	exact := &DateRange{Start: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)}
	ranged := &DateRange{
		Start: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		dateRange *DateRange
		testTime  time.Time
		want      bool
	}{
		{
			name:      "exact date matches regardless of clock time",
			dateRange: exact,
			testTime:  time.Date(2025, 12, 10, 23, 59, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "exact date rejects the following day",
			dateRange: exact,
			testTime:  time.Date(2025, 12, 11, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "range includes start boundary",
			dateRange: ranged,
			testTime:  time.Date(2025, 12, 10, 7, 30, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "range includes end boundary",
			dateRange: ranged,
			testTime:  time.Date(2025, 12, 20, 22, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "range includes middle",
			dateRange: ranged,
			testTime:  time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC),
			want:      true,
		},
		{
			name:      "range rejects before start",
			dateRange: ranged,
			testTime:  time.Date(2025, 12, 9, 23, 59, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "range rejects after end",
			dateRange: ranged,
			testTime:  time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
			want:      false,
		},
		{
			name:      "nil range always contains",
			dateRange: nil,
			testTime:  time.Date(2025, 12, 15, 12, 0, 0, 0, time.UTC),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dateRange.Contains(tt.testTime))
		})
	}
}

// The comparison uses the timestamp's own local calendar date, not UTC.
func TestDateRange_UsesLocalDate(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	// 00:30 Oslo time on Dec 11 is still Dec 10 in UTC.
	departure := time.Date(2025, 12, 11, 0, 30, 0, 0, oslo)
	dr := &DateRange{Start: time.Date(2025, 12, 11, 0, 0, 0, 0, time.UTC)}

	assert.True(t, dr.Contains(departure))
}

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNil   bool
		wantErr   bool
		wantStart string
		wantEnd   string
	}{
		{name: "valid window", input: "06:00-12:00", wantStart: "06:00", wantEnd: "12:00"},
		{name: "single digit hours", input: "6:00-9:30", wantStart: "06:00", wantEnd: "09:30"},
		{name: "spaces around parts", input: "06:00 - 12:00", wantStart: "06:00", wantEnd: "12:00"},
		{name: "empty input means no window", input: "", wantNil: true},
		{name: "missing separator", input: "06:0012:00", wantErr: true},
		{name: "garbage input", input: "bad", wantErr: true},
		{name: "non-numeric components", input: "ab:cd-ef:gh", wantErr: true},
		{name: "hour out of range", input: "25:00-26:00", wantErr: true},
		{name: "minute out of range", input: "06:75-12:00", wantErr: true},
		{name: "too many separators", input: "06:00-12:00-18:00", wantErr: true},
		{name: "missing end", input: "06:00-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ParseTimeWindow(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidRequest(err), "parse failures wrap ErrInvalidRequest")

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, tt.input)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, window)
				return
			}

			require.NotNil(t, window)
			assert.Equal(t, tt.wantStart, window.Start.Format("15:04"))
			assert.Equal(t, tt.wantEnd, window.End.Format("15:04"))
		})
	}
}

func TestParseDateOrRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantStart string
		wantEnd   string // empty means exact-date match
	}{
		{name: "single date", input: "2025-12-10", wantStart: "2025-12-10"},
		{name: "date range", input: "2025-12-10:2025-12-20", wantStart: "2025-12-10", wantEnd: "2025-12-20"},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "wrong format", input: "10/12/2025", wantErr: true},
		{name: "bad range start", input: "bad:2025-12-20", wantErr: true},
		{name: "bad range end", input: "2025-12-10:bad", wantErr: true},
		{name: "too many colons", input: "2025-12-10:2025-12-20:2025-12-30", wantErr: true},
		{name: "empty input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, err := ParseDateOrRange(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidRequest(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, dr)
			assert.Equal(t, tt.wantStart, dr.Start.Format("2006-01-02"))
			if tt.wantEnd == "" {
				assert.True(t, dr.End.IsZero())
			} else {
				assert.Equal(t, tt.wantEnd, dr.End.Format("2006-01-02"))
			}
		})
	}
}

// createFilterTestFlight builds a one-segment flight for filter tests.
func createFilterTestFlight(price float64, airline string, departure time.Time) Flight {
	seg := NewFlightSegment("OSL", "PER", departure, departure.Add(17*time.Hour), 0, airline+" 100", airline)
	return NewFlight(price, "NOK", nil, []FlightSegment{seg}, "")
}

func TestFilterOptions_MatchesFlight(t *testing.T) {
	departure := time.Date(2025, 12, 10, 7, 30, 0, 0, time.UTC)
	baseFlight := createFilterTestFlight(8950, "QR", departure)
	window := &TimeRange{
		Start: time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC),
		End:   time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		filters *FilterOptions
		flight  Flight
		want    bool
	}{
		{
			name:    "nil filters match everything",
			filters: nil,
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "empty filters match everything",
			filters: &FilterOptions{},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "airline match",
			filters: &FilterOptions{Airlines: []string{"QR"}},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "airline mismatch",
			filters: &FilterOptions{Airlines: []string{"EK"}},
			flight:  baseFlight,
			want:    false,
		},
		{
			name:    "airline filter is uppercased before comparing",
			filters: &FilterOptions{Airlines: []string{"qr"}},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "price at boundary is kept",
			filters: &FilterOptions{MaxPrice: floatPtr(8950)},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "price above boundary is dropped",
			filters: &FilterOptions{MaxPrice: floatPtr(8949.99)},
			flight:  baseFlight,
			want:    false,
		},
		{
			name:    "departure window match",
			filters: &FilterOptions{DepartureWindow: window},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "departure window mismatch",
			filters: &FilterOptions{DepartureWindow: window},
			flight:  createFilterTestFlight(8950, "QR", time.Date(2025, 12, 10, 14, 20, 0, 0, time.UTC)),
			want:    false,
		},
		{
			name:    "date match",
			filters: &FilterOptions{Dates: &DateRange{Start: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)}},
			flight:  baseFlight,
			want:    true,
		},
		{
			name:    "date mismatch",
			filters: &FilterOptions{Dates: &DateRange{Start: time.Date(2025, 12, 11, 0, 0, 0, 0, time.UTC)}},
			flight:  baseFlight,
			want:    false,
		},
		{
			name: "all criteria together",
			filters: &FilterOptions{
				Airlines:        []string{"QR"},
				MaxPrice:        floatPtr(9000),
				DepartureWindow: window,
				Dates:           &DateRange{Start: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)},
			},
			flight: baseFlight,
			want:   true,
		},
		{
			name: "one failing criterion drops the flight",
			filters: &FilterOptions{
				Airlines: []string{"QR"},
				MaxPrice: floatPtr(8000),
			},
			flight: baseFlight,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.MatchesFlight(tt.flight))
		})
	}
}

// A flight with two airlines passes a filter naming either one: the check
// is set intersection, not subset.
func TestFilterOptions_AirlineIntersection(t *testing.T) {
	departure := time.Date(2025, 12, 10, 7, 30, 0, 0, time.UTC)
	multi := NewFlight(9750, "NOK", []string{"QR", "EK"}, []FlightSegment{
		NewFlightSegment("OSL", "DXB", departure, departure.Add(6*time.Hour), 0, "EK 160", "EK"),
	}, "")

	assert.True(t, (&FilterOptions{Airlines: []string{"EK"}}).MatchesFlight(multi))
	assert.True(t, (&FilterOptions{Airlines: []string{"QR"}}).MatchesFlight(multi))
	assert.True(t, (&FilterOptions{Airlines: []string{"EK", "QR"}}).MatchesFlight(multi))
	assert.True(t, (&FilterOptions{Airlines: []string{"QR", "EK"}}).MatchesFlight(multi))
	assert.False(t, (&FilterOptions{Airlines: []string{"BA"}}).MatchesFlight(multi))
}

func TestFilterOptions_SegmentlessFlights(t *testing.T) {
	segmentless := NewFlight(5000, "NOK", []string{"QR"}, nil, "")
	window := &TimeRange{
		Start: time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(0, 1, 1, 23, 59, 0, 0, time.UTC),
	}

	t.Run("kept when only segment-independent criteria are active", func(t *testing.T) {
		filters := &FilterOptions{Airlines: []string{"QR"}, MaxPrice: floatPtr(6000)}
		assert.True(t, filters.MatchesFlight(segmentless))
	})

	t.Run("dropped by departure window regardless of its width", func(t *testing.T) {
		filters := &FilterOptions{DepartureWindow: window}
		assert.False(t, filters.MatchesFlight(segmentless))
	})

	t.Run("dropped by date filter", func(t *testing.T) {
		filters := &FilterOptions{Dates: &DateRange{Start: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)}}
		assert.False(t, filters.MatchesFlight(segmentless))
	})
}

func TestFilterOptions_HasActiveCriteria(t *testing.T) {
	var nilFilters *FilterOptions
	assert.False(t, nilFilters.HasActiveCriteria())
	assert.False(t, (&FilterOptions{}).HasActiveCriteria())
	assert.True(t, (&FilterOptions{Airlines: []string{"QR"}}).HasActiveCriteria())
	assert.True(t, (&FilterOptions{MaxPrice: floatPtr(9000)}).HasActiveCriteria())
	assert.True(t, (&FilterOptions{DepartureWindow: &TimeRange{}}).HasActiveCriteria())
	assert.True(t, (&FilterOptions{Dates: &DateRange{}}).HasActiveCriteria())
}

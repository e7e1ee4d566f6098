package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/internal/infrastructure/timeutil"
)

// createSortTestFlight builds a single-leg flight whose booking link tags the
// flight so that ordering assertions can identify it.
func createSortTestFlight(tag string, price float64, departure time.Time, durationMin int) domain.Flight {
	arrival := departure.Add(time.Duration(durationMin) * time.Minute)
	seg := domain.NewFlightSegment("OSL", "PER", departure, arrival, durationMin, "QR 100", "QR")
	return domain.NewFlight(price, "NOK", nil, []domain.FlightSegment{seg}, "https://booking.example/"+tag)
}

func sortTestFlights() []domain.Flight {
	osl := timeutil.OsloLocation()
	return []domain.Flight{
		createSortTestFlight("a", 11200, time.Date(2025, 12, 10, 9, 15, 0, 0, osl), 1105),
		createSortTestFlight("b", 8950, time.Date(2025, 12, 10, 7, 30, 0, 0, osl), 1210),
		createSortTestFlight("c", 9750, time.Date(2025, 12, 10, 6, 45, 0, 0, osl), 1300),
	}
}

func sortedTags(flights []domain.Flight) []string {
	tags := make([]string, len(flights))
	for i, f := range flights {
		tags[i] = f.BookingLink[len("https://booking.example/"):]
	}
	return tags
}

func TestSortFlights_Empty(t *testing.T) {
	result := SortFlights(nil, domain.SortByPrice)
	assert.Empty(t, result)

	result = SortFlights([]domain.Flight{}, domain.SortByPrice)
	assert.Empty(t, result)
}

func TestSortFlights_ByPrice(t *testing.T) {
	result := SortFlights(sortTestFlights(), domain.SortByPrice)

	assert.Equal(t, []string{"b", "c", "a"}, sortedTags(result))
}

func TestSortFlights_ByDuration(t *testing.T) {
	result := SortFlights(sortTestFlights(), domain.SortByDuration)

	assert.Equal(t, []string{"a", "b", "c"}, sortedTags(result))
}

func TestSortFlights_ByDeparture(t *testing.T) {
	result := SortFlights(sortTestFlights(), domain.SortByDeparture)

	assert.Equal(t, []string{"c", "b", "a"}, sortedTags(result))
}

func TestSortFlights_InvalidOptionDefaultsToPrice(t *testing.T) {
	result := SortFlights(sortTestFlights(), domain.SortOption("banana"))

	assert.Equal(t, []string{"b", "c", "a"}, sortedTags(result))
}

func TestSortFlights_EmptyOptionDefaultsToPrice(t *testing.T) {
	result := SortFlights(sortTestFlights(), "")

	assert.Equal(t, []string{"b", "c", "a"}, sortedTags(result))
}

func TestSortFlights_StableOnTies(t *testing.T) {
	osl := timeutil.OsloLocation()
	flights := []domain.Flight{
		createSortTestFlight("first", 9000, time.Date(2025, 12, 10, 10, 0, 0, 0, osl), 1200),
		createSortTestFlight("second", 9000, time.Date(2025, 12, 10, 8, 0, 0, 0, osl), 1200),
		createSortTestFlight("cheap", 8000, time.Date(2025, 12, 10, 12, 0, 0, 0, osl), 1200),
	}

	result := SortFlights(flights, domain.SortByPrice)

	// Equal prices keep their original relative order.
	assert.Equal(t, []string{"cheap", "first", "second"}, sortedTags(result))
}

func TestSortFlights_SortsInPlace(t *testing.T) {
	flights := sortTestFlights()

	result := SortFlights(flights, domain.SortByPrice)

	// The caller's slice is reordered, not copied.
	assert.Equal(t, []string{"b", "c", "a"}, sortedTags(flights))
	assert.True(t, &flights[0] == &result[0])
}

func TestSortFlights_SegmentlessFlights(t *testing.T) {
	osl := timeutil.OsloLocation()
	segmentless := domain.NewFlight(9999, "NOK", []string{"QR"}, nil, "https://booking.example/bare")
	flights := []domain.Flight{
		createSortTestFlight("z", 8000, time.Date(2025, 12, 10, 10, 0, 0, 0, osl), 1200),
		segmentless,
	}

	t.Run("duration sorts them first", func(t *testing.T) {
		result := SortFlights(flights, domain.SortByDuration)

		require.Len(t, result, 2)
		assert.Empty(t, result[0].Segments)
	})

	t.Run("departure sorts them first", func(t *testing.T) {
		result := SortFlights(flights, domain.SortByDeparture)

		require.Len(t, result, 2)
		assert.Empty(t, result[0].Segments)
	})
}

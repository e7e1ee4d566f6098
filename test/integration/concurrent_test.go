package integration

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-app/flight-search-tool/internal/domain"
	"github.com/travel-app/flight-search-tool/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that multiple concurrent
// search requests are handled correctly without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	// Arrange
	provider := mock.NewProvider("kiwi").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithFlights(mock.SampleFlights(3))

	ts := NewTestServer(CreateUseCase(provider))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(DefaultSearchRequest())
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		env, err := results[i].ParseSearch()
		require.NoError(t, err)
		require.NotNil(t, env.Data, "request %d should have data", i)
		assert.Len(t, env.Data.Flights, 3, "request %d should have 3 flights", i)
	}

	// One provider call per request, no caching between them
	assert.Equal(t, numRequests, provider.CallCount())
}

// TestConcurrent_IndependentResults tests that requests against separate
// server instances never see each other's results.
func TestConcurrent_IndependentResults(t *testing.T) {
	// Arrange - A fast and a slow instance with different result sets
	fastServer := NewTestServer(CreateUseCase(
		mock.NewProvider("fast").WithFlights(mock.SampleFlights(2))))

	slowServer := NewTestServer(CreateUseCase(
		mock.NewProvider("slow").
			WithDelay(50 * time.Millisecond).
			WithFlights(mock.SampleFlights(3))))

	numPairs := 5
	var wg sync.WaitGroup
	fastResults := make([]*SearchEnvelope, numPairs)
	slowResults := make([]*SearchEnvelope, numPairs)

	// Act - Interleave requests against both instances
	for i := 0; i < numPairs; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			resp := fastServer.SearchRequest(DefaultSearchRequest())
			if resp.Code == http.StatusOK {
				fastResults[idx], _ = resp.ParseSearch()
			}
		}(i)
		go func(idx int) {
			defer wg.Done()
			resp := slowServer.SearchRequest(DefaultSearchRequest())
			if resp.Code == http.StatusOK {
				slowResults[idx], _ = resp.ParseSearch()
			}
		}(i)
	}

	wg.Wait()

	// Assert - Each instance returns only its own provider's flights
	for i := 0; i < numPairs; i++ {
		require.NotNil(t, fastResults[i], "fast request %d should have result", i)
		assert.Len(t, fastResults[i].Data.Flights, 2)
		assert.Equal(t, "fast", fastResults[i].Data.Metadata.Provider)

		require.NotNil(t, slowResults[i], "slow request %d should have result", i)
		assert.Len(t, slowResults[i].Data.Flights, 3)
		assert.Equal(t, "slow", slowResults[i].Data.Metadata.Provider)
	}
}

// TestConcurrent_MixedSuccessAndFailure tests concurrent requests where
// some hit a healthy instance and some a failing one.
func TestConcurrent_MixedSuccessAndFailure(t *testing.T) {
	// Arrange
	goodServer := NewTestServer(CreateUseCase(
		mock.NewProvider("good").WithFlights(mock.SampleFlights(2))))

	badServer := NewTestServer(CreateUseCase(
		mock.NewProvider("bad").
			WithError(domain.NewProviderError("bad", errors.New("connection refused")))))

	numRequests := 20
	var wg sync.WaitGroup
	successCount := 0
	failureCount := 0
	var mu sync.Mutex

	// Act - Even requests hit the good instance, odd the failing one
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			var resp Response
			if idx%2 == 0 {
				resp = goodServer.SearchRequest(DefaultSearchRequest())
			} else {
				resp = badServer.SearchRequest(DefaultSearchRequest())
			}

			mu.Lock()
			defer mu.Unlock()
			switch resp.Code {
			case http.StatusOK:
				successCount++
			case http.StatusBadGateway:
				failureCount++
			}
		}(i)
	}

	wg.Wait()

	// Assert
	assert.Equal(t, numRequests/2, successCount, "good instance requests should succeed")
	assert.Equal(t, numRequests/2, failureCount, "failing instance requests should return 502")
}

// TestConcurrent_NoRaceCondition is designed to be run with -race flag.
// Mixed request shapes exercise filtering and sorting concurrently over
// the shared dataset.
func TestConcurrent_NoRaceCondition(t *testing.T) {
	// Arrange
	ts := newDatasetServer(t)

	numGoroutines := 50
	var wg sync.WaitGroup

	// Different request types to exercise different paths
	maxPrice := SearchRequestBody{
		Origin:      "OSL",
		Destination: "PER",
		Date:        "2025-12-10",
		Filters:     map[string]interface{}{"max_price": 10000},
		SortBy:      "duration",
	}
	roundTrip := SearchRequestBody{
		Origin:      "OSL",
		Destination: "PER",
		DateRange:   "2025-12-10:2025-12-11",
		Adults:      2,
	}
	requests := []SearchRequestBody{
		DefaultSearchRequest(),
		maxPrice,
		roundTrip,
	}

	// Act
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.SearchRequest(requests[idx%len(requests)])
			assert.Equal(t, http.StatusOK, resp.Code)
		}(i)
	}

	wg.Wait()
}

// TestConcurrent_ProviderCallCountAccuracy tests that the mock provider's
// call count is accurate under concurrent access.
func TestConcurrent_ProviderCallCountAccuracy(t *testing.T) {
	// Arrange
	provider := mock.NewProvider("kiwi").WithFlights(mock.SampleFlights(1))
	ts := NewTestServer(CreateUseCase(provider))

	numRequests := 100
	var wg sync.WaitGroup

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ts.SearchRequest(DefaultSearchRequest())
		}()
	}

	wg.Wait()

	// Assert - Provider should be called exactly numRequests times
	assert.Equal(t, numRequests, provider.CallCount())
}

// TestConcurrent_HighLoadScenario fires many concurrent requests against
// the dataset-backed stack and checks every response is complete.
func TestConcurrent_HighLoadScenario(t *testing.T) {
	// Arrange
	ts := newDatasetServer(t)

	numRequests := 50
	var wg sync.WaitGroup
	successCount := 0
	totalFlights := 0
	var mu sync.Mutex

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.SearchRequest(DefaultSearchRequest())
			if resp.Code == http.StatusOK {
				if env, err := resp.ParseSearch(); err == nil && env.Data != nil {
					mu.Lock()
					successCount++
					totalFlights += len(env.Data.Flights)
					mu.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	// Assert - Every request sees the full filtered dataset
	assert.Equal(t, numRequests, successCount, "all requests should succeed")
	assert.Equal(t, numRequests*5, totalFlights, "each request should return the 5 matching flights")
}

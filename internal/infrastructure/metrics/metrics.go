// Package metrics exposes Prometheus instrumentation for the search service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics for the search pipeline.
type Metrics struct {
	reg *prometheus.Registry

	// SearchesTotal counts searches by provider and outcome.
	SearchesTotal *prometheus.CounterVec

	// SearchDuration observes end-to-end search latency in seconds.
	SearchDuration prometheus.Histogram

	// ResultsReturned observes how many flights a search returned after filtering.
	ResultsReturned prometheus.Histogram

	// ProviderErrors counts failures per provider.
	ProviderErrors *prometheus.CounterVec
}

// New creates metrics bound to a private registry so that tests can
// instantiate it repeatedly without duplicate registration panics.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight searches by provider and status",
		}, []string{"provider", "status"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to complete a flight search",
			Buckets:   prometheus.DefBuckets,
		}),
		ResultsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "results_returned",
			Help:      "Number of flights returned per search after filtering",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		}),
		ProviderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of provider failures",
		}, []string{"provider"}),
	}
}

// ObserveSearch records one completed search.
func (m *Metrics) ObserveSearch(provider string, durationSeconds float64, results int, err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
		m.ProviderErrors.WithLabelValues(provider).Inc()
	}

	m.SearchesTotal.WithLabelValues(provider, status).Inc()
	m.SearchDuration.Observe(durationSeconds)
	if err == nil {
		m.ResultsReturned.Observe(float64(results))
	}
}

// Handler returns the scrape endpoint for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

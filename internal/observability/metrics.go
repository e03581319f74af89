package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "inventory"

// Metrics holds the Prometheus collectors for geocoding and retailer enrichment.
type Metrics struct {
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,timeout,network,provider,no_results,unknown}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	Enrichments        *prometheus.CounterVec // labels: result={enriched,failed,skipped}
}

// NewMetrics creates the collectors and registers them with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.Enrichments,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Geocoding provider round-trip duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Enrichments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retailer_enrichments_total",
			Help:      "Retailer location enrichment attempts by result.",
		}, []string{"result"}),
	}
}

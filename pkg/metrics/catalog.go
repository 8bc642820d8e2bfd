package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes recorded by CatalogFetchMetrics.
const (
	OutcomeReady    = "ready"
	OutcomeFailed   = "failed"
	OutcomeStale    = "stale"
	OutcomeDisposed = "disposed"
)

// CatalogFetchMetrics records catalog fetches issued by screen sessions.
type CatalogFetchMetrics struct {
	duration *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewCatalogFetchMetrics registers the catalog fetch metrics on the provided registerer.
func NewCatalogFetchMetrics(reg prometheus.Registerer) *CatalogFetchMetrics {
	if reg == nil {
		return &CatalogFetchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_fetch_duration_seconds",
		Help:    "Duration of catalog product fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"screen"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_outcomes_total",
		Help: "Catalog fetches by screen and outcome.",
	}, []string{"screen", "outcome"})
	reg.MustRegister(duration, outcomes)
	return &CatalogFetchMetrics{
		duration: duration,
		outcomes: outcomes,
	}
}

// ObserveDuration records how long a fetch for the named screen took.
func (c *CatalogFetchMetrics) ObserveDuration(screen string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(screen)).Observe(duration.Seconds())
}

// IncOutcome increments the outcome counter for the named screen.
func (c *CatalogFetchMetrics) IncOutcome(screen, outcome string) {
	if c == nil || c.outcomes == nil {
		return
	}
	c.outcomes.WithLabelValues(normalizeLabel(screen), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

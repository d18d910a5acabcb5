package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the server.
type Metrics struct {
	Registry         *prometheus.Registry
	RequestsTotal    *prometheus.CounterVec
	FetchDuration    prometheus.Histogram
	FetchErrorsTotal *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bin_days_requests_total",
			Help: "Variant lookups served, by variant and outcome.",
		},
		[]string{"variant", "outcome"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bin_days_fetch_duration_seconds",
			Help:    "Latency of upstream schedule fetches including parsing.",
			Buckets: prometheus.DefBuckets,
		},
	)
	fetchErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bin_days_fetch_errors_total",
			Help: "Upstream fetch failures by error type.",
		},
		[]string{"error_type"},
	)

	registry.MustRegister(requests, fetchDuration, fetchErrors)

	return &Metrics{
		Registry:         registry,
		RequestsTotal:    requests,
		FetchDuration:    fetchDuration,
		FetchErrorsTotal: fetchErrors,
	}
}

// IncRequest counts one lookup outcome for a variant.
func (m *Metrics) IncRequest(variant, outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(variant, outcome).Inc()
}

// ObserveFetch records an upstream fetch duration.
func (m *Metrics) ObserveFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// IncFetchError counts a fetch failure by type label.
func (m *Metrics) IncFetchError(errorType string) {
	if m == nil {
		return
	}
	m.FetchErrorsTotal.WithLabelValues(errorType).Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Reportgate
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Relay Metrics
	RemoteFetchDuration  prometheus.Histogram
	ReportsStreamedTotal prometheus.Counter
	StreamedBytesTotal   prometheus.Counter
	RelayFailuresTotal   prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reportgate_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reportgate_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reportgate_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Relay Metrics
		RemoteFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reportgate_remote_fetch_duration_seconds",
				Help:    "Remote report fetch latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		ReportsStreamedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reportgate_reports_streamed_total",
				Help: "Total validated report artifacts streamed to callers",
			},
		),
		StreamedBytesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reportgate_streamed_bytes_total",
				Help: "Total artifact bytes streamed to callers",
			},
		),
		RelayFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reportgate_relay_failures_total",
				Help: "Total relay pipeline failures by error kind",
			},
			[]string{"kind"},
		),
	}
}

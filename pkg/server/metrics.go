package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry
// so tests can run multiple servers without collision.
type Metrics struct {
	registry *prometheus.Registry

	scoreRequestsTotal prometheus.Counter
	exportsTotal       *prometheus.CounterVec
	skippedSections    prometheus.Counter
	feedbackTotal      *prometheus.CounterVec
	exportDuration     prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.scoreRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "readykit_score_requests_total",
		Help: "Total number of scoring requests handled",
	})
	m.exportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readykit_exports_total",
		Help: "Total number of PDF exports by outcome",
	}, []string{"status"})
	m.skippedSections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "readykit_skipped_sections_total",
		Help: "Total number of report sections skipped during export",
	})
	m.feedbackTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "readykit_feedback_total",
		Help: "Total number of feedback submissions by outcome",
	}, []string{"status"})
	m.exportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "readykit_export_duration_seconds",
		Help:    "PDF export duration distribution in seconds",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
	})

	m.registry.MustRegister(
		m.scoreRequestsTotal,
		m.exportsTotal,
		m.skippedSections,
		m.feedbackTotal,
		m.exportDuration,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package monitoring exposes request-level metrics in Prometheus format
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config is the monitoring-related part of the service config
type Config struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PrometheusMetrics holds the metric vectors the HTTP middlewares feed
type PrometheusMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewPrometheusMetrics registers all vectors on a dedicated registry, so the
// exposition endpoint only ever serves what this service emits.
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Duration of handled HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		registry: registry,
	}

	registry.MustRegister(m.RequestsTotal, m.RequestDuration)

	return m
}

// Handler serves the exposition endpoint for this registry
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Order outcome labels
const (
	OrderCompleted   = "completed"
	OrderUnavailable = "unavailable"
	OrderRejected    = "rejected"
)

// Metrics holds the application's Prometheus collectors.
// Each instance carries its own registry so tests can create them freely.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Orders       *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rostershop",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rostershop",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "path"},
		),

		Orders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rostershop",
				Subsystem: "shop",
				Name:      "orders_total",
				Help:      "Total number of product orders by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(m.HTTPRequests, m.HTTPDuration, m.Orders)
	return m
}

// Handler returns the HTTP handler exposing this instance's registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

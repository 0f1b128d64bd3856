// File: internal/metrics/metrics.go

// Package metrics registers the Prometheus counters that act as the
// observability side channel for failures which are deliberately not
// surfaced to callers (most importantly the confirmation materializer's).
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Confirmation event outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeDuplicate = "duplicate"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

// Metrics holds the application counters.
type Metrics struct {
	// ConfirmationEvents counts processed confirmation events by outcome.
	ConfirmationEvents *prometheus.CounterVec
	// ProviderErrors counts identity provider failures by operation and kind.
	ProviderErrors *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the metrics set on its own registry.
func New() *Metrics {
	m := &Metrics{
		ConfirmationEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_kit_confirmation_events_total",
			Help: "Confirmation events processed, by outcome.",
		}, []string{"outcome"}),
		ProviderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_kit_provider_errors_total",
			Help: "Identity provider failures, by operation and failure kind.",
		}, []string{"operation", "kind"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.ConfirmationEvents,
		m.ProviderErrors,
	)

	return m
}

// Handler exposes the registry for GET /metrics.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Package metrics defines the Prometheus instrumentation for the
// server. Metrics are registered on a private registry so tests can
// construct instances without collisions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// ToolCalls counts tool invocations by tool name and outcome
	// ("success" or the envelope's error code).
	ToolCalls *prometheus.CounterVec

	// ToolDuration observes tool handler latency in seconds.
	ToolDuration *prometheus.HistogramVec

	// APIRequests counts outbound ERPNext requests by method and
	// status class.
	APIRequests *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "erpnext_mcp",
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "erpnext_mcp",
			Name:      "tool_duration_seconds",
			Help:      "Tool handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "erpnext_mcp",
			Name:      "api_requests_total",
			Help:      "Outbound ERPNext API requests by HTTP method and status class.",
		}, []string{"method", "status"}),
	}

	m.registry.MustRegister(m.ToolCalls, m.ToolDuration, m.APIRequests)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveToolCall records one tool invocation.
func (m *Metrics) ObserveToolCall(tool, outcome string, seconds float64) {
	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(seconds)
}

// ObserveAPIRequest records one outbound request.
func (m *Metrics) ObserveAPIRequest(method, status string) {
	m.APIRequests.WithLabelValues(method, status).Inc()
}

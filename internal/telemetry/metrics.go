// Package telemetry exports store activity as Prometheus metrics.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
)

// Metrics counts dispatched actions and tracks the roster size.
type Metrics struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	vendors  prometheus.Gauge
}

var _ store.Observer = (*Metrics)(nil)

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vendor_panel",
			Name:      "actions_total",
			Help:      "Actions dispatched to the vendor store, by type.",
		}, []string{"action"}),
		vendors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vendor_panel",
			Name:      "vendors",
			Help:      "Vendors currently in the store.",
		}),
	}
	m.registry.MustRegister(m.actions, m.vendors)
	return m
}

// Observe implements store.Observer.
func (m *Metrics) Observe(c store.Change) {
	m.actions.WithLabelValues(string(c.Action.Type())).Inc()
	m.vendors.Set(float64(len(c.Next.Vendors)))
}

// SetVendors records the roster size before the first dispatch.
func (m *Metrics) SetVendors(n int) {
	m.vendors.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

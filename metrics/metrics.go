// Package metrics exposes a completed simulation run as Prometheus
// collectors. Grounded on
// r3e-network-service_layer/infrastructure/metrics: a struct of named
// collectors, registered against either the default or a caller-supplied
// registry, populated once after the run rather than wired into the event
// loop itself.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrew-eldridge/simux/engine"
)

// PrometheusSink holds every collector a simux run can populate.
type PrometheusSink struct {
	ResourceUtilization *prometheus.GaugeVec
	EntitiesDisposed    prometheus.Gauge
	EntitiesInFlight    prometheus.Gauge
	EntitySystemTime    prometheus.Histogram
}

// New creates a PrometheusSink registered against prometheus.DefaultRegisterer.
func New() *PrometheusSink {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a PrometheusSink registered against registerer.
func NewWithRegistry(registerer prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		ResourceUtilization: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "simux_resource_utilization",
				Help: "Fraction of capacity*duration spent seized, per resource.",
			},
			[]string{"resource"},
		),
		EntitiesDisposed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "simux_entities_disposed_total",
				Help: "Entities disposed of before horizon cutoff.",
			},
		),
		EntitiesInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "simux_entities_in_flight",
				Help: "Entities still in flight at horizon cutoff.",
			},
		),
		EntitySystemTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simux_entity_system_time_seconds",
				Help:    "Time in system for disposed entities.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	registerer.MustRegister(s.ResourceUtilization, s.EntitiesDisposed, s.EntitiesInFlight, s.EntitySystemTime)
	return s
}

// Observe populates every collector from a completed run's Result. The
// engine package never imports prometheus; this is the one place a run's
// numbers cross into the Prometheus client surface.
func (s *PrometheusSink) Observe(result *engine.Result, duration float64) {
	for _, r := range result.Resources {
		s.ResourceUtilization.WithLabelValues(r.Name).Set(r.CalcUtilization(duration))
	}

	var disposed, inFlight int
	for _, row := range result.Rows {
		if row.Disposed == nil {
			inFlight++
			continue
		}
		disposed++
		if row.TimeInSystem != nil {
			s.EntitySystemTime.Observe(*row.TimeInSystem)
		}
	}
	s.EntitiesDisposed.Set(float64(disposed))
	s.EntitiesInFlight.Set(float64(inFlight))
}

// Package metrics exposes Prometheus collectors for the activity directory.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "activities"

// Collector records roster change outcomes and current roster sizes.
type Collector struct {
	registry     *prometheus.Registry
	outcomes     *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

// NewCollector registers the directory collectors, along with the Go runtime
// and process collectors, on a fresh registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "roster_changes_total",
			Help:      "Signup and unregister requests by activity and outcome.",
		}, []string{"operation", "activity", "outcome"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "participants",
			Help:      "Current number of participants enrolled per activity.",
		}, []string{"activity"}),
	}

	registry.MustRegister(
		c.outcomes,
		c.participants,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// RecordOutcome increments the outcome counter for a roster change.
func (c *Collector) RecordOutcome(operation, activity, outcome string) {
	if c == nil {
		return
	}
	c.outcomes.WithLabelValues(operation, activity, outcome).Inc()
}

// SetParticipants updates the roster size gauge of an activity.
func (c *Collector) SetParticipants(activity string, count int) {
	if c == nil {
		return
	}
	c.participants.WithLabelValues(activity).Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

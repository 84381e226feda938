// Package metrics exposes Prometheus collectors for layout rounds.
//
// Collectors are registered on a caller-supplied registry via promauto.With,
// so several Collectors (or tests) never clash on the global registry.
// Every series carries a "map" label holding the layout's ID.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "hypermap"

// Collector groups the layout metrics.
type Collector struct {
	RoundsTotal   *prometheus.CounterVec
	RoundFailures *prometheus.CounterVec
	RoundDuration *prometheus.HistogramVec
	Nodes         *prometheus.GaugeVec
	CentroidDrift *prometheus.GaugeVec
}

// New registers the layout collectors on reg. A nil reg falls back to
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	labels := []string{"map"}

	return &Collector{
		RoundsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rounds_total",
			Help:      "Alignment rounds committed.",
		}, labels),
		RoundFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "round_failures_total",
			Help:      "Alignment rounds aborted without committing.",
		}, labels),
		RoundDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "round_duration_seconds",
			Help:      "Wall time of an alignment round, barrier and recentering included.",
			// From tiny test graphs to large maps on a loaded pool.
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, labels),
		Nodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "nodes",
			Help:      "Nodes placed by the layout.",
		}, labels),
		CentroidDrift: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "centroid_drift",
			Help:      "Norm of the centroid subtracted in the last committed round.",
		}, labels),
	}
}

// ObserveRound records a committed round: its duration and the norm of the
// centroid that was removed.
func (c *Collector) ObserveRound(mapID string, d time.Duration, drift float64) {
	if c == nil {
		return
	}
	c.RoundsTotal.WithLabelValues(mapID).Inc()
	c.RoundDuration.WithLabelValues(mapID).Observe(d.Seconds())
	c.CentroidDrift.WithLabelValues(mapID).Set(drift)
}

// ObserveFailure records an aborted round.
func (c *Collector) ObserveFailure(mapID string) {
	if c == nil {
		return
	}
	c.RoundFailures.WithLabelValues(mapID).Inc()
}

// SetNodes records the node count of a layout.
func (c *Collector) SetNodes(mapID string, n int) {
	if c == nil {
		return
	}
	c.Nodes.WithLabelValues(mapID).Set(float64(n))
}

// Forget drops every series of mapID, e.g. when the layout is closed.
func (c *Collector) Forget(mapID string) {
	if c == nil {
		return
	}
	c.RoundsTotal.DeleteLabelValues(mapID)
	c.RoundFailures.DeleteLabelValues(mapID)
	c.RoundDuration.DeleteLabelValues(mapID)
	c.Nodes.DeleteLabelValues(mapID)
	c.CentroidDrift.DeleteLabelValues(mapID)
}

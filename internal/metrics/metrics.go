// Package metrics holds the Prometheus collectors for world activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voxelcity"

// Edit outcome labels.
const (
	OpAdd    = "add"
	OpRemove = "remove"

	ResultApplied  = "applied"
	ResultRejected = "rejected"
)

// World collects generation, rebuild and edit metrics.
type World struct {
	Generations     prometheus.Counter
	Rebuilds        prometheus.Counter
	Edits           *prometheus.CounterVec
	VisibleInstance prometheus.Gauge
	RebuildDuration prometheus.Histogram
}

// NewWorld creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewWorld(reg prometheus.Registerer) *World {
	m := &World{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Full world generations.",
		}),
		Rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_rebuilds_total",
			Help:      "Instance set rebuilds.",
		}),
		Edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Block edits by operation and result.",
		}, []string{"op", "result"}),
		VisibleInstance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "visible_instances",
			Help:      "Instances in the current set.",
		}),
		RebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mesh_rebuild_seconds",
			Help:      "Time spent rebuilding the instance set.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Generations, m.Rebuilds, m.Edits, m.VisibleInstance, m.RebuildDuration)
	}
	return m
}

// ObserveRebuild records one rebuild.
func (m *World) ObserveRebuild(d time.Duration, visible int) {
	m.Rebuilds.Inc()
	m.VisibleInstance.Set(float64(visible))
	m.RebuildDuration.Observe(d.Seconds())
}

// ObserveEdit records an edit attempt.
func (m *World) ObserveEdit(op string, applied bool) {
	result := ResultRejected
	if applied {
		result = ResultApplied
	}
	m.Edits.WithLabelValues(op, result).Inc()
}

// Shot outcome labels.
const (
	ShotHit  = "hit"
	ShotMiss = "miss"
)

// Gun collects firing metrics.
type Gun struct {
	Shots  *prometheus.CounterVec
	Clears prometheus.Counter
}

// NewGun creates the gun collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewGun(reg prometheus.Registerer) *Gun {
	m := &Gun{
		Shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gun",
			Name:      "shots_total",
			Help:      "Shots fired by result.",
		}, []string{"result"}),
		Clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gun",
			Name:      "visual_clears_total",
			Help:      "Tracer and marker clears.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Shots, m.Clears)
	}
	return m
}

// ObserveShot records one shot.
func (m *Gun) ObserveShot(hit bool) {
	result := ShotMiss
	if hit {
		result = ShotHit
	}
	m.Shots.WithLabelValues(result).Inc()
}

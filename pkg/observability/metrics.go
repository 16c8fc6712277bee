// Package observability exposes interpreter lifecycle events as
// Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sift/pkg/interp"
)

// Metrics collects per-turn counters and latency histograms. Wire it to
// an Interpreter via Hooks() and register it on a prometheus registry.
type Metrics struct {
	turns       *prometheus.CounterVec
	transitions *prometheus.CounterVec
	extractions prometheus.Counter
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sift_turns_total",
				Help: "Dialog turns processed, by node and outcome.",
			},
			[]string{"location", "outcome"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sift_transitions_total",
				Help: "Location transitions, by source and target node.",
			},
			[]string{"from", "to"},
		),
		extractions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sift_extraction_fallbacks_total",
				Help: "Turns that fell back to structured extraction.",
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sift_turn_duration_seconds",
				Help:    "Wall-clock duration of one dialog turn.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"location"},
		),
	}
}

// Register adds the collectors to the registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.turns, m.transitions, m.extractions, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns interpreter hooks that feed these collectors.
func (m *Metrics) Hooks() interp.Hooks {
	return interp.Hooks{
		OnTurn: func(e interp.TurnEvent) {
			outcome := "failure"
			if e.Success {
				outcome = "success"
			}
			m.turns.WithLabelValues(e.Location, outcome).Inc()
			m.duration.WithLabelValues(e.Location).Observe(e.Duration.Seconds())
		},
		OnTransition: func(e interp.TransitionEvent) {
			m.transitions.WithLabelValues(e.From, e.To).Inc()
		},
		OnExtraction: func(interp.ExtractionEvent) {
			m.extractions.Inc()
		},
	}
}

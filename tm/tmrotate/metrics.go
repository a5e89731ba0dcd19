package tmrotate

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by a [Sealer].
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Rounds counts rotation hook invocations by outcome:
	// "skipped" when no rotation was due, "rotated", or "failed".
	Rounds *prometheus.CounterVec

	// Insertions counts placed rotation transactions by path:
	// "appended" or "overwritten".
	Insertions *prometheus.CounterVec

	// Failures counts failed rounds by the stage that failed:
	// "head", "proof", "build", "insert", or "panic".
	Failures *prometheus.CounterVec
}

// NewMetrics creates the rotation collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpbft_rotation_rounds_total",
				Help: "Rotation hook invocations by outcome.",
			},
			[]string{"group_id", "outcome"},
		),
		Insertions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpbft_rotation_insertions_total",
				Help: "Rotation transactions placed in sealed blocks, by insertion path.",
			},
			[]string{"group_id", "path"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpbft_rotation_failures_total",
				Help: "Failed rotation rounds by failing stage.",
			},
			[]string{"group_id", "stage"},
		),
	}

	for _, c := range []prometheus.Collector{m.Rounds, m.Insertions, m.Failures} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register rotation metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) round(group, outcome string) {
	if m == nil {
		return
	}
	m.Rounds.WithLabelValues(group, outcome).Inc()
}

func (m *Metrics) insertion(group string, mode InsertMode) {
	if m == nil {
		return
	}
	m.Insertions.WithLabelValues(group, mode.String()).Inc()
}

func (m *Metrics) failure(group, stage string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(group, stage).Inc()
}

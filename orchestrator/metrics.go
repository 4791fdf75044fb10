package orchestrator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the orchestrator's prometheus instrumentation, registered
// against an explicit *prometheus.Registry rather than the package-level
// default registry (spec.md §9's redesign note against global mutable
// state).
type Metrics struct {
	Registry  *prometheus.Registry
	Submitted prometheus.Counter
	Completed prometheus.Counter
	Failed    prometheus.Counter
	Skipped   prometheus.Counter
	Duration  prometheus.Histogram
}

// NewMetrics builds a Metrics bound to a fresh registry and registers every
// collector on it.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		Registry: registry,
		Submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phdtester_contexts_submitted_total",
			Help: "Test contexts submitted to an external program.",
		}),
		Completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phdtester_contexts_completed_total",
			Help: "Test contexts whose external program exited 0.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phdtester_contexts_failed_total",
			Help: "Test contexts whose external program exited non-zero.",
		}),
		Skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phdtester_contexts_skipped_total",
			Help: "Test contexts skipped because their output artifacts already exist.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "phdtester_external_process_duration_seconds",
			Help:    "Wall-clock duration of external program invocations.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	registry.MustRegister(m.Submitted, m.Completed, m.Failed, m.Skipped, m.Duration)
	return m
}

func (m *Metrics) observeDuration(d time.Duration) {
	if m == nil || m.Duration == nil {
		return
	}
	m.Duration.Observe(d.Seconds())
}

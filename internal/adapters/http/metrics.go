package http

import (
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the HTTP adapter.
type Metrics struct {
	runsTotal *prometheus.CounterVec
	runSteps  prometheus.Histogram
}

// NewMetrics registers the cinta collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinta_runs_total",
				Help: "Total machine runs by verdict.",
			},
			[]string{"verdict"},
		),
		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cinta_run_steps",
				Help:    "Transitions applied per run.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
	reg.MustRegister(m.runsTotal, m.runSteps)
	return m
}

// Observe records one finished run.
func (m *Metrics) Observe(result *domain.RunResult) {
	verdict := "rejected"
	if result.Accepted {
		verdict = "accepted"
	}
	m.runsTotal.WithLabelValues(verdict).Inc()
	m.runSteps.Observe(float64(result.Steps))
}

package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Parse outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeUnreadable    = "unreadable"
	OutcomeModelFallback = "model_fallback" // parsed fine, but rule-only
)

// Metrics holds the pipeline's Prometheus instruments.
type Metrics struct {
	parses *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_parses_total",
				Help: "Total number of résumé parse attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.parses); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.parses.WithLabelValues(outcome).Inc()
}

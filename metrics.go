package safefs

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmgilman/go/safefs/errors"
)

// Metrics counts operations and their outcomes. A nil *Metrics records
// nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	removals   *prometheus.CounterVec
}

// NewMetrics creates the safefs collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safefs_operations_total",
			Help: "Operations by name and outcome. Outcome is ok or a lower-cased error code.",
		}, []string{"operation", "outcome"}),
		removals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "safefs_remove_strategy_total",
			Help: "RemoveTree calls by removal strategy.",
		}, []string{"strategy"}),
	}
	for _, c := range []prometheus.Collector{m.operations, m.removals} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to register metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = strings.ToLower(string(errors.GetCode(err)))
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) observeRemoval(s Strategy) {
	if m == nil {
		return
	}
	m.removals.WithLabelValues(string(s)).Inc()
}

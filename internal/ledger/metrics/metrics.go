package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the reward ledger.
type Metrics struct {
	Mints         prometheus.Counter
	Redeems       prometheus.Counter
	Failures      *prometheus.CounterVec
	Compensations *prometheus.CounterVec
	RelayedEvents prometheus.Counter
}

// New creates the collectors and registers them with registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		Mints: factory.NewCounter(prometheus.CounterOpts{
			Name: "reward_ledger_mints_total",
			Help: "Total number of committed mint calls",
		}),
		Redeems: factory.NewCounter(prometheus.CounterOpts{
			Name: "reward_ledger_redeems_total",
			Help: "Total number of committed redeem calls",
		}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reward_ledger_failures_total",
			Help: "Failed mint and redeem calls by operation and reason",
		}, []string{"operation", "reason"}),
		Compensations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reward_ledger_compensations_total",
			Help: "Reversals of settled custodian transfers by asset kind and outcome",
		}, []string{"kind", "outcome"}),
		RelayedEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "reward_ledger_relayed_events_total",
			Help: "Total number of reward events published by the relay",
		}),
	}
}

func (m *Metrics) IncMint() {
	m.Mints.Inc()
}

func (m *Metrics) IncRedeem() {
	m.Redeems.Inc()
}

func (m *Metrics) IncFailure(operation, reason string) {
	m.Failures.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) IncCompensation(kind, outcome string) {
	m.Compensations.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) AddRelayed(count int) {
	m.RelayedEvents.Add(float64(count))
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.IncMint()
	m.IncMint()
	m.IncRedeem()
	m.IncFailure("mint", "custodian_call_failed")
	m.IncCompensation("unique_item", "reversed")
	m.AddRelayed(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Mints))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Redeems))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Failures.WithLabelValues("mint", "custodian_call_failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Compensations.WithLabelValues("unique_item", "reversed")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.RelayedEvents))
}

func TestNew_RegistersOnce(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	New(registry)

	assert.Panics(t, func() { New(registry) })
}

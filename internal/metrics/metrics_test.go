package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveValidation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveValidation(OutcomeValid)
	m.ObserveValidation(OutcomeNotFound)
	m.ObserveValidation(OutcomeNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues(OutcomeValid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.validations.WithLabelValues(OutcomeNotFound)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.validations.WithLabelValues(OutcomeStorageUnavailable)))
}

func TestObserveCreation(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCreation()
	m.ObserveCreationFailure("invalid_input")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.creations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.creationFailures.WithLabelValues("invalid_input")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveValidation(OutcomeValid)
		m.ObserveCreation()
		m.ObserveCreationFailure("storage_unavailable")
	})
}

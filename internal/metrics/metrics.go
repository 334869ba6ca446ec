package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maintcert"

// Validation outcomes, also used as log fields
const (
	OutcomeValid              = "valid"
	OutcomeInvalidFormat      = "invalid_format"
	OutcomeNotFound           = "not_found"
	OutcomeStorageUnavailable = "storage_unavailable"
)

// Metrics is nil safe, a nil *Metrics records nothing
type Metrics struct {
	validations      *prometheus.CounterVec
	creations        prometheus.Counter
	creationFailures *prometheus.CounterVec
}

// New registers the collectors with registry. Passing nil uses the default registerer
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Public certificate validations by outcome",
		}, []string{"outcome"}),
		creations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "certificates_created_total",
			Help:      "Certificates created with both identifiers assigned",
		}),
		creationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "certificate_creation_failures_total",
			Help:      "Certificate creations that failed, by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ObserveValidation(outcome string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCreation() {
	if m == nil {
		return
	}
	m.creations.Inc()
}

func (m *Metrics) ObserveCreationFailure(reason string) {
	if m == nil {
		return
	}
	m.creationFailures.WithLabelValues(reason).Inc()
}

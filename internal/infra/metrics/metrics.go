// Package metrics defines the Prometheus counters for authentication and registration.
// Metric names and labels are declared here and nowhere else.
package metrics

import (
	"sews/internal/domain/entity"
	"sews/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sews"

type authMetrics struct {
	loginAttempts *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

// New registers the counters with reg. Passing prometheus.DefaultRegisterer exposes them on /metrics.
func New(reg prometheus.Registerer) service.AuthMetrics {
	factory := promauto.With(reg)

	return &authMetrics{
		// Labels:
		//   - kind: "customer" or "tailor"
		//   - outcome: one of the service.Outcome* labels
		loginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Total number of login attempts by principal kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		registrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of registration attempts by principal kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
	}
}

// NewDefault registers with the process-wide Prometheus registry.
func NewDefault() service.AuthMetrics {
	return New(prometheus.DefaultRegisterer)
}

func (m *authMetrics) LoginAttempt(kind entity.PrincipalKind, outcome string) {
	m.loginAttempts.WithLabelValues(kind.String(), outcome).Inc()
}

func (m *authMetrics) Registration(kind entity.PrincipalKind, outcome string) {
	m.registrations.WithLabelValues(kind.String(), outcome).Inc()
}

type noopMetrics struct{}

// Noop discards every observation.
func Noop() service.AuthMetrics {
	return noopMetrics{}
}

func (noopMetrics) LoginAttempt(entity.PrincipalKind, string) {}
func (noopMetrics) Registration(entity.PrincipalKind, string) {}

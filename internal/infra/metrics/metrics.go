// Package metrics defines the Prometheus collectors of the account service.
// Collectors are registered on the Registerer handed to the constructors so tests
// can use an isolated registry.
package metrics

import (
	"strconv"
	"time"

	"reportsys/internal/domain/entity"
	"reportsys/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reportsys"

// roleNone labels login attempts that matched no partition.
const roleNone = "none"

type accountMetrics struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
}

// NewAccountMetrics registers the login and registration counters.
func NewAccountMetrics(reg prometheus.Registerer) service.AccountMetrics {
	factory := promauto.With(reg)

	return &accountMetrics{
		// Labels:
		//   - role: partition that matched, or "none"
		//   - outcome: success, failure or error
		logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of login attempts, by matched role and outcome.",
			},
			[]string{"role", "outcome"},
		),
		registrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of registration attempts, by role and outcome.",
			},
			[]string{"role", "outcome"},
		),
	}
}

func (m *accountMetrics) LoginAttempt(role *entity.Role, outcome string) {
	label := roleNone
	if role != nil {
		label = role.String()
	}
	m.logins.WithLabelValues(label, outcome).Inc()
}

func (m *accountMetrics) Registration(role entity.Role, outcome string) {
	m.registrations.WithLabelValues(role.String(), outcome).Inc()
}

// HTTPMetrics observes served HTTP requests.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request duration histogram.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		duration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests, by method, route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Observe records one finished request. route is the matched route pattern, not the raw path.
func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	m.duration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

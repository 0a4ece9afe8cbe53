package gateway

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes reported to metrics.
const (
	OutcomeAccepted   = "accepted"
	OutcomeMalformed  = "malformed"
	OutcomeInvalid    = "invalid"
	OutcomeStoreError = "store_error"
)

// Metrics exposes counters for the intake flow.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total requests by path and status",
		}, []string{"path", "status"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "gateway",
			Name:      "submissions_total",
			Help:      "Total contact submissions by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.submissionsTotal)
	return m
}

func (m *Metrics) ObserveRequest(path string, status int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(path, statusLabel(status)).Inc()
}

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func statusLabel(status int) string {
	switch {
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

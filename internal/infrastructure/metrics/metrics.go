package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Advisor call outcomes.
const (
	OutcomeAPI      = "api"
	OutcomeFallback = "fallback"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careerchat",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "careerchat",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Advisor call counter, labeled by operation (reply|title) and
	// outcome (api|fallback)
	AdvisorCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careerchat",
			Subsystem: "api",
			Name:      "advisor_calls_total",
			Help:      "Total reply/title generation calls by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordAdvisorCall records a reply or title generation call.
func RecordAdvisorCall(operation, outcome string) {
	AdvisorCallsTotal.WithLabelValues(operation, outcome).Inc()
}

package profile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "memobase"

var (
	// resolutionsTotal counts effective-list resolutions by the policy that won.
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "profile",
			Name:      "resolutions_total",
			Help:      "Total number of profile topic resolutions by policy",
		},
		[]string{"policy"},
	)

	// validationFailuresTotal counts resolutions rejected by a malformed record.
	validationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "profile",
			Name:      "validation_failures_total",
			Help:      "Total number of profile configurations rejected as invalid",
		},
	)

	// effectiveTopics is the size of the last resolved topic list.
	effectiveTopics = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "profile",
			Name:      "effective_topics",
			Help:      "Number of topics in the last resolved profile taxonomy",
		},
	)
)

func recordResolution(policy Policy, topics int) {
	resolutionsTotal.WithLabelValues(policy.String()).Inc()
	effectiveTopics.Set(float64(topics))
}

func recordValidationFailure() {
	validationFailuresTotal.Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAnswered          = "answered"
	OutcomeOffTopic          = "off_topic"
	OutcomeMissingInput      = "missing_input"
	OutcomeProviderError     = "provider_error"
	OutcomeMalformedResponse = "malformed_response"
	OutcomeBadRequest        = "bad_request"
)

var (
	classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_agent_classifications_total",
		Help: "Topic classifications by result.",
	}, []string{"result"})

	chatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_agent_chat_requests_total",
		Help: "Chat requests by outcome.",
	}, []string{"outcome"})

	providerLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "health_agent_provider_latency_seconds",
		Help:    "Latency of chat-completion provider calls.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	})
)

func ObserveClassification(healthRelated bool) {
	result := "off_topic"
	if healthRelated {
		result = "health"
	}
	classifications.WithLabelValues(result).Inc()
}

func ObserveOutcome(outcome string) {
	chatRequests.WithLabelValues(outcome).Inc()
}

func ObserveProviderLatency(d time.Duration) {
	providerLatency.Observe(d.Seconds())
}

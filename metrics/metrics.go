// Package metrics provides Prometheus metrics for the brigade gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts gateway requests by endpoint and status class.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brigade",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Gateway requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamFailures counts failed calls to the upstream webhooks,
	// whether network errors or non-2xx responses.
	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "brigade",
			Subsystem: "gateway",
			Name:      "upstream_failures_total",
			Help:      "Failed upstream webhook calls by endpoint.",
		},
		[]string{"endpoint"},
	)

	// SpamTrapped counts honeypot-flagged contact submissions.
	SpamTrapped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "brigade",
			Subsystem: "gateway",
			Name:      "contact_spam_trapped_total",
			Help:      "Contact submissions silently dropped by the honeypot.",
		},
	)
)

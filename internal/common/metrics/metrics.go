// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	SearchesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searches_failed_total",
			Help: "Total number of failed search requests",
		},
		[]string{"error_code"},
	)

	RetrievalDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_degraded_total",
			Help: "Total number of retrievals that degraded to an empty pool",
		},
		[]string{"stage"},
	)
)

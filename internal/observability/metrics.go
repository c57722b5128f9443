package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	CardResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_resolutions_total",
			Help: "Public card resolutions by outcome",
		},
		[]string{"outcome"},
	)

	ConnectionSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connection_saves_total",
			Help: "Connection save attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ReviewDecisions counts applied review decisions by action.
	ReviewDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_review_decisions_total",
			Help: "Total number of applied review decisions by action",
		},
		[]string{"action"},
	)

	// ReviewConflicts counts decisions rejected because the record was already reviewed.
	ReviewConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seo_review_conflicts_total",
			Help: "Total number of review decisions on already reviewed records",
		},
	)

	// StatsCacheLookups counts stats cache lookups by result (hit, miss, error).
	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_review_stats_cache_lookups_total",
			Help: "Stats cache lookups by result",
		},
		[]string{"result"},
	)

	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_review_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// RateLimited counts requests rejected by the rate limiter, by route.
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_review_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// HTTPRequests counts handled HTTP requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seo_review_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)

	// HTTPDuration tracks HTTP request latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seo_review_http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

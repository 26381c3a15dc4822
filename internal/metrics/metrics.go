// Package metrics holds the application's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the application-specific Prometheus collectors.
var Registry = prometheus.NewRegistry()

var (
	selections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordofday",
			Subsystem: "selection",
			Name:      "requests_total",
			Help:      "Total selection requests by outcome (cache_hit, generated, error).",
		},
		[]string{"outcome"},
	)

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordofday",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total upstream API requests by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordofday",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wordofday",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)
)

func init() {
	Registry.MustRegister(
		selections,
		upstreamRequests,
		httpRequests,
		httpDuration,
		collectors.NewGoCollector(),
	)
}

// Handler serves the registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// SelectionServed records the outcome of one selection request.
func SelectionServed(outcome string) {
	selections.WithLabelValues(outcome).Inc()
}

// UpstreamRequest records one upstream API call.
func UpstreamRequest(provider string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamRequests.WithLabelValues(provider, outcome).Inc()
}

// ObserveHTTP records one handled HTTP request.
func ObserveHTTP(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

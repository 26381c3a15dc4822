package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/wordofday-backend/internal/metrics"
)

// Metrics returns middleware that records request counts and latency per
// method and path. Paths are taken from the matched route pattern when the
// mux provides one, so unmatched probes do not explode label cardinality.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}
			metrics.ObserveHTTP(r.Method, path, sw.status, time.Since(start))
		})
	}
}

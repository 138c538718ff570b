package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/seo-review-backend/internal/metrics"
)

// Metrics records request counts and latency per route pattern. It must wrap
// the ServeMux directly: the mux stores the matched pattern on the request it
// is given, and the labels are read from that request afterwards.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newResponseRecorder(w)

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

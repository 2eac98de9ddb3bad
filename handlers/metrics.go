package handlers

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Count of HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_request_duration_seconds",
		Help: "HTTP request latency by method and route.",
	}, []string{"method", "path"})
)

func InstrumentHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		// The mux records the matched pattern on the request, so ids in the
		// path collapse into one label value. Unmatched requests share a
		// single bucket to keep cardinality bounded.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}

		httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(m.Code)).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(m.Duration.Seconds())
	})
}

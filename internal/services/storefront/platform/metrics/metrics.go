// Package metrics exposes Prometheus instrumentation for the storefront.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const unmatchedRoute = "unmatched"

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storefront_http_requests_total", Help: "Total HTTP requests served by the storefront."},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "storefront_http_request_duration_seconds", Help: "Storefront HTTP request duration.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	backendCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storefront_backend_calls_total", Help: "Backend API calls by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	backendCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "storefront_backend_call_duration_seconds", Help: "Backend API call duration.", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)
	cacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storefront_catalog_cache_lookups_total", Help: "Catalog cache lookups by backend and result."},
		[]string{"backend", "result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, backendCallsTotal, backendCallDuration, cacheLookupsTotal)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Middleware records request counts and latency labelled by the matched
// ServeMux pattern. It must wrap the mux directly so the pattern set
// during routing is visible afterwards.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(sw, r)
		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}
		route := RoutePattern(r)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RoutePattern returns the matched route pattern, or "unmatched".
func RoutePattern(r *http.Request) string {
	if r == nil || r.Pattern == "" {
		return unmatchedRoute
	}
	return r.Pattern
}

// ObserveBackendCall records one backend API call.
func ObserveBackendCall(operation string, outcome string, elapsed time.Duration) {
	backendCallsTotal.WithLabelValues(operation, outcome).Inc()
	backendCallDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCacheLookup records a catalog cache hit, miss or error.
func ObserveCacheLookup(backend string, result string) {
	cacheLookupsTotal.WithLabelValues(backend, result).Inc()
}

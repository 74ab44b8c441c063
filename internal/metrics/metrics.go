// Package metrics holds the Prometheus collectors of the service: HTTP
// request metrics and review moderation counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chebplace_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chebplace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	reviewsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chebplace_reviews_submitted_total",
		Help: "Reviews accepted for moderation.",
	})

	reviewPhotosStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chebplace_review_photos_stored_total",
		Help: "Photos attached to submitted reviews.",
	})

	reviewsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chebplace_reviews_rejected_total",
			Help: "Review submissions that were not stored, by reason.",
		},
		[]string{"reason"},
	)

	reviewsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chebplace_reviews_approved_total",
		Help: "Review approvals performed by admins.",
	})

	approvedCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chebplace_approved_reviews_cache_total",
			Help: "Lookups of the approved reviews cache, by result.",
		},
		[]string{"result"},
	)
)

func ReviewSubmitted(photos int) {
	reviewsSubmitted.Inc()
	reviewPhotosStored.Add(float64(photos))
}

// ReviewRejected records a failed submission; reason is one of
// "validation", "not_found" or "error".
func ReviewRejected(reason string) {
	reviewsRejected.WithLabelValues(reason).Inc()
}

func ReviewApproved() {
	reviewsApproved.Inc()
}

func CacheHit() {
	approvedCacheLookups.WithLabelValues("hit").Inc()
}

func CacheMiss() {
	approvedCacheLookups.WithLabelValues("miss").Inc()
}

// Middleware records request count and latency. The route label is the chi
// route pattern, so ids in the path do not blow up cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := newStatusRecorder(w)
		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

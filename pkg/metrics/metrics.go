// Package metrics exposes Prometheus instrumentation for the service:
// an HTTP request duration histogram plus counters for contact submissions
// and outbound email dispatches.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// reqDuration is a histogram of HTTP request durations in seconds, labeled
// by route pattern, method, and status code.
var reqDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: []float64{0.01, 0.1, 0.3, 1.2, 5},
	},
	[]string{"path", "method", "status"},
)

// submissions counts contact-form submissions by terminal outcome
// (ok, missing_fields, invalid_email, spam, rate_limited,
// server_misconfigured, failed_to_send).
var submissions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome.",
	},
	[]string{"outcome"},
)

// emailsSent counts outbound dispatch attempts by status (sent, failed).
var emailsSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Outbound email dispatch attempts by status.",
	},
	[]string{"status"},
)

// RegisterDefault registers the Go runtime and process collectors plus the
// service collectors. Safe to call more than once; collectors that are
// already registered are skipped.
func RegisterDefault() {
	mustRegister(collectors.NewGoCollector())
	mustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mustRegister(reqDuration)
	mustRegister(submissions)
	mustRegister(emailsSent)
}

func mustRegister(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		panic("metrics: failed to register collector: " + err.Error())
	}
}

// ObserveSubmission increments the submission counter for an outcome.
func ObserveSubmission(outcome string) {
	submissions.WithLabelValues(outcome).Inc()
}

// ObserveEmailSent increments the dispatch counter.
func ObserveEmailSent(ok bool) {
	status := "sent"
	if !ok {
		status = "failed"
	}
	emailsSent.WithLabelValues(status).Inc()
}

// HTTPMetrics is a middleware recording request duration into the
// http_request_duration_seconds histogram. The chi route pattern
// (e.g. "/api/contact") is used instead of the raw URL to keep label
// cardinality bounded.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		reqDuration.WithLabelValues(
			path,
			r.Method,
			strconv.Itoa(ww.Status()),
		).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

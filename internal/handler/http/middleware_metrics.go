package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "staffing"

type metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestsDuration *prometheus.HistogramVec
	inFlight         *prometheus.GaugeVec
	authFailures     *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method"},
		),
		authFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "auth_failures_total",
				Help:      "Requests rejected by the admin guard, by status.",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestsDuration, m.inFlight, m.authFailures)

	return m
}

// withMetrics records request counters and latencies labelled by the chi
// route pattern, so that /users/{id} is a single series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		method := r.Method

		h.metrics.inFlight.WithLabelValues(method).Inc()
		defer h.metrics.inFlight.WithLabelValues(method).Dec()

		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		// route pattern is only known after routing
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := mw.Status()
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			h.metrics.authFailures.WithLabelValues(strconv.Itoa(status)).Inc()
		}

		h.metrics.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		h.metrics.requestsDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}

func (h *Handler) metricsHandler() http.Handler {
	return promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry})
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/icondumpsters/web/internal/schema"
)

// Metrics holds the Prometheus collectors exported at /metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LeadsSubmitted  prometheus.Counter
	SchemaInjected  prometheus.Counter
}

// NewMetrics creates and registers the site's Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "iconweb_requests_total",
			Help: "Total HTTP requests, labeled by route pattern and status",
		}, []string{"route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "iconweb_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		LeadsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "iconweb_leads_submitted_total",
			Help: "Total quote-form submissions accepted",
		}),
		SchemaInjected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "iconweb_schema_blocks_total",
			Help: "Total JSON-LD blocks emitted into rendered pages",
		}),
	}
}

// Instrument records per-request counters and latency. City pages are
// registered as literal routes, so they are collapsed into a single
// placeholder label to keep series cardinality flat.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := NewResponseRecorder(w)
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if schema.ResolveCitySlugFromPath(r.URL.Path) != "" {
			route = "/dumpster-rental-{city}-ut"
		} else if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		m.RequestsTotal.WithLabelValues(route, strconv.Itoa(rw.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

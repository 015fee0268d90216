// Package metrics exposes Prometheus metrics for the HTTP API, the
// suggestion gateway and the dashboard summary. A nil *Metrics is valid and
// records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ganot/landlord/internal/domain/dashboard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	suggestionRequests *prometheus.CounterVec
	suggestionDuration prometheus.Histogram

	apartments      prometheus.Gauge
	occupancyRate   prometheus.Gauge
	overdueRents    prometheus.Gauge
	openMaintenance prometheus.Gauge
}

// New registers every metric under namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		suggestionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "suggestion_requests_total",
				Help:      "Total number of maintenance suggestion requests by outcome",
			},
			[]string{"outcome"},
		),
		suggestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "suggestion_duration_seconds",
				Help:      "Duration of maintenance suggestion requests in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
			},
		),

		apartments: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "apartments",
			Help:      "Number of managed apartments",
		}),
		occupancyRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupancy_rate_percent",
			Help:      "Share of occupied apartments as a whole percentage",
		}),
		overdueRents: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "overdue_rents",
			Help:      "Number of apartments with overdue rent",
		}),
		openMaintenance: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_maintenance_requests",
			Help:      "Number of maintenance requests not completed",
		}),
	}
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and durations per route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		labels := []string{r.Method, path, strconv.Itoa(status)}
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// ObserveSuggestion records one gateway call.
func (m *Metrics) ObserveSuggestion(available bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "unavailable"
	if available {
		outcome = "available"
	}
	m.suggestionRequests.WithLabelValues(outcome).Inc()
	m.suggestionDuration.Observe(elapsed.Seconds())
}

// SetSummary publishes the dashboard figures as gauges.
func (m *Metrics) SetSummary(s dashboard.Summary) {
	if m == nil {
		return
	}
	m.apartments.Set(float64(s.TotalProperties))
	m.occupancyRate.Set(float64(s.OccupancyRate))
	m.overdueRents.Set(float64(s.OverdueRents))
	m.openMaintenance.Set(float64(s.OpenMaintenance))
}

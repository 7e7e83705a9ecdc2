package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry so tests and multiple servers never collide on the global one
type Metrics struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	loads            *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_upstream_requests_total",
				Help: "Open-Meteo requests by service and outcome.",
			},
			[]string{"service", "outcome"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_upstream_request_duration_seconds",
				Help:    "Open-Meteo request latency by service.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_loads_total",
				Help: "City loads by outcome.",
			},
			[]string{"outcome"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_http_requests_total",
				Help: "HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.upstreamRequests,
		m.upstreamDuration,
		m.loads,
		m.httpRequests,
	)

	return m
}

// ObserveRequest records one upstream call
func (m *Metrics) ObserveRequest(service, outcome string, duration time.Duration) {
	m.upstreamRequests.WithLabelValues(service, outcome).Inc()
	m.upstreamDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// ObserveLoad records the outcome of a city load
func (m *Metrics) ObserveLoad(outcome string) {
	m.loads.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests by matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Registry exposes the underlying registry for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

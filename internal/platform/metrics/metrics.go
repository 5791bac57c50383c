package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics of the dashboard.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     prometheus.Counter
	exportsTotal    *prometheus.CounterVec
}

// New creates a collector backed by its own registry, so several instances
// can coexist in tests.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripboard_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tripboard_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"route"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tripboard_http_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripboard_exports_total",
				Help: "Generated chart images and reports by kind",
			},
			[]string{"kind"},
		),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.rateLimited,
		c.exportsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Record(route, method string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
	if status == http.StatusTooManyRequests {
		c.rateLimited.Inc()
	}
}

func (c *Collector) RecordExport(kind string) {
	if c == nil {
		return
	}
	c.exportsTotal.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

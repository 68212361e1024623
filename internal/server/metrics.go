package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	totalKg      prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_footprint",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "carbon_footprint",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_footprint",
			Name:      "calculations_total",
			Help:      "Footprint calculations by outcome (ok, invalid, error).",
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carbon_footprint",
			Name:      "report_cache_lookups_total",
			Help:      "Report cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		totalKg: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "carbon_footprint",
			Name:      "report_total_kg",
			Help:      "Total kg CO2e of calculated reports.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	m.registry.MustRegister(m.requests, m.duration, m.calculations, m.cacheLookups, m.totalKg)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

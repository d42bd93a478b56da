package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/williampepple1/post-inspector/internal/inspect"
	"github.com/williampepple1/post-inspector/pkg/models"
)

// Metrics records inspection outcomes
type Metrics struct {
	registry    *prometheus.Registry
	inspections *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics registers the inspection metrics on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inspections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "post_inspector_inspections_total",
				Help: "Total number of inspections by outcome and post kind",
			},
			[]string{"outcome", "kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "post_inspector_inspection_duration_seconds",
				Help:    "Inspection duration in seconds, including the upstream fetch",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(m.inspections, m.duration)
	m.registry.MustRegister(collectors.NewGoCollector())

	return m
}

// Observe records one finished inspection
func (m *Metrics) Observe(env models.Envelope, code inspect.Code, elapsed time.Duration) {
	outcome, kind := "ok", ""
	if !env.OK {
		outcome = string(code)
	} else if env.Data != nil {
		kind = string(env.Data.Kind)
	}
	m.inspections.WithLabelValues(outcome, kind).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

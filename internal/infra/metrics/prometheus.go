// Package metrics exposes Prometheus metrics for access decisions.
package metrics

import (
	"net/http"

	"academy/config"
	"academy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "academy"

// PrometheusMetrics holds the collectors registered by the service.
type PrometheusMetrics struct {
	registry  *prometheus.Registry
	Decisions *prometheus.CounterVec
}

// NewPrometheusMetrics registers the decision counter on reg.
func NewPrometheusMetrics(reg *prometheus.Registry) (*PrometheusMetrics, error) {
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "access_decisions_total",
		Help:      "Device access decisions by outcome.",
	}, []string{"outcome"})

	if err := reg.Register(decisions); err != nil {
		return nil, errors.Wrap(err, "failed to register decision counter")
	}

	return &PrometheusMetrics{
		registry:  reg,
		Decisions: decisions,
	}, nil
}

// New builds the service registry with Go and process collectors.
func New() (*PrometheusMetrics, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewPrometheusMetrics(reg)
}

// ObserveDecision counts one access decision.
func (m *PrometheusMetrics) ObserveDecision(outcome string) {
	m.Decisions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NewAccessMetrics exposes the collectors as the domain recorder, or a no-op when disabled.
func NewAccessMetrics(cfg *config.Config, m *PrometheusMetrics) service.AccessMetrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return noopMetrics{}
	}

	return m
}

type noopMetrics struct{}

func (noopMetrics) ObserveDecision(string) {}

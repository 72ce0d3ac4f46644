package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/cmdassist/pkg/domain"
)

// Metrics counts wizard activity on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	transitions *prometheus.CounterVec
	ignored     *prometheus.CounterVec
	results     *prometheus.CounterVec
}

// NewMetrics registers the wizard counters and the Go runtime collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdassist_transitions_total",
				Help: "Accepted step transitions.",
			},
			[]string{"from", "to"},
		),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdassist_ignored_events_total",
				Help: "Inputs ignored by the current step.",
			},
			[]string{"step", "kind"},
		),
		results: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdassist_fallback_results_total",
				Help: "Result cards by origin (catalog or fallback).",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(
		m.transitions,
		m.ignored,
		m.results,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks records transitions, ignored inputs and results.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(_ context.Context, e *domain.StepEvent) {
			if e.From == "" {
				return
			}
			m.transitions.WithLabelValues(string(e.From), string(e.Step)).Inc()
		},
		OnInputIgnored: func(_ context.Context, e *domain.IgnoredEvent) {
			m.ignored.WithLabelValues(string(e.Step), string(e.Input.Kind)).Inc()
		},
		OnResult: func(_ context.Context, e *domain.ResultEvent) {
			kind := "catalog"
			if e.Fallback {
				kind = "fallback"
			}
			m.results.WithLabelValues(kind).Inc()
		},
	}
}

// Package metrics provides the Prometheus metrics of the recipe query and mutation paths.
package metrics

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recipefinder"

// RecipeMetrics contains the Prometheus metrics of recipe operations.
type RecipeMetrics struct {
	FilterDuration prometheus.Histogram
	FilterResults  prometheus.Histogram
	MutationsTotal *prometheus.CounterVec
}

// NewRecipeMetrics creates and registers the recipe metrics on registry.
func NewRecipeMetrics(registry *prometheus.Registry) (*RecipeMetrics, error) {
	m := &RecipeMetrics{
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_duration_seconds",
			Help:      "Duration of recipe filter queries in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		FilterResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_results",
			Help:      "Number of recipes returned by filter queries.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		MutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of recipe mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	for _, collector := range []prometheus.Collector{m.FilterDuration, m.FilterResults, m.MutationsTotal} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register recipe metrics: %w", err)
		}
	}

	return m, nil
}

// ObserveFilter records one filter query.
func (m *RecipeMetrics) ObserveFilter(elapsed time.Duration, results int) {
	m.FilterDuration.Observe(elapsed.Seconds())
	m.FilterResults.Observe(float64(results))
}

// ObserveMutation counts a mutation, labelled with the error kind on failure.
func (m *RecipeMetrics) ObserveMutation(operation string, err error) {
	m.MutationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}

	return strings.ToLower(domainerrors.KindOf(err).String())
}

// noopMetrics discards observations when metrics are disabled.
type noopMetrics struct{}

func (noopMetrics) ObserveFilter(time.Duration, int) {}

func (noopMetrics) ObserveMutation(string, error) {}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewMetrics returns Prometheus-backed metrics when enabled, otherwise a no-op.
func NewMetrics(cfg *config.Config, registry *prometheus.Registry) (service.Metrics, error) {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return noopMetrics{}, nil
	}

	return NewRecipeMetrics(registry)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMutation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewRecipeMetrics(registry)
	require.NoError(t, err)

	m.ObserveMutation("create_recipe", nil)
	m.ObserveMutation("create_recipe", errors.Wrap(domainerrors.ErrRecipeNameTaken, "failed to create recipe"))
	m.ObserveMutation("toggle_favorite", domainerrors.ErrRecipeNotFound)
	m.ObserveMutation("toggle_favorite", errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("create_recipe", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("create_recipe", "constraintviolation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("toggle_favorite", "notfound")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("toggle_favorite", "internal")), 0)
}

func TestObserveFilter(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewRecipeMetrics(registry)
	require.NoError(t, err)

	m.ObserveFilter(15*time.Millisecond, 3)
	m.ObserveFilter(2*time.Millisecond, 0)

	var duration dto.Metric
	require.NoError(t, m.FilterDuration.Write(&duration))
	assert.Equal(t, uint64(2), duration.GetHistogram().GetSampleCount())

	var results dto.Metric
	require.NoError(t, m.FilterResults.Write(&results))
	assert.InDelta(t, 3, results.GetHistogram().GetSampleSum(), 0)
}

func TestNewRecipeMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewRecipeMetrics(registry)
	require.NoError(t, err)

	_, err = NewRecipeMetrics(registry)
	require.Error(t, err)
}

func TestNewMetrics(t *testing.T) {
	disabled, err := NewMetrics(&config.Config{}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, noopMetrics{}, disabled)

	enabled, err := NewMetrics(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}, prometheus.NewRegistry())
	require.NoError(t, err)
	assert.IsType(t, &RecipeMetrics{}, enabled)
}

func TestHandler(t *testing.T) {
	registry := NewRegistry()
	m, err := NewRecipeMetrics(registry)
	require.NoError(t, err)
	m.ObserveMutation("add_comment", nil)

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recipefinder_mutations_total{operation="add_comment",outcome="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if labels[l.GetName()] != l.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)
	m.IncCacheBuild("app")
	m.IncCacheBuild("app")
	m.IncEvent("app", "entry_added")
	m.IncDroppedReaction("base")

	assert.Equal(t, 2.0, counterValue(t, reg, "i18n_project_cache_builds_total", map[string]string{"project": "app"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "i18n_project_events_total", map[string]string{"project": "app", "kind": "entry_added"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "i18n_project_reactions_dropped_total", map[string]string{"project": "base"}))
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(reg)
	require.NoError(t, err)
	b, err := New(reg)
	require.NoError(t, err)
	a.IncCacheBuild("a")
	b.IncCacheBuild("b")

	assert.Same(t, a.CacheBuilds, b.CacheBuilds)
	assert.Equal(t, 1.0, counterValue(t, reg, "i18n_project_cache_builds_total", map[string]string{"project": "b"}))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncCacheBuild("x")
		m.IncEvent("x", "refresh")
		m.IncDroppedReaction("x")
	})
	m, err := New(nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() { m.IncCacheBuild("x") })
}

func TestMetrics_ConflictingRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "i18n_project_events_total",
		Help: "Total number of project events fired, by kind",
	}, []string{"source"})))

	var (
		m   *Metrics
		err error
	)
	require.NotPanics(t, func() { m, err = New(reg) })
	assert.Error(t, err)
	require.NotNil(t, m)
	assert.NotPanics(t, func() { m.IncEvent("app", "refresh") })

	m.IncCacheBuild("app")
	assert.Equal(t, 1.0, counterValue(t, reg, "i18n_project_cache_builds_total", map[string]string{"project": "app"}))
}

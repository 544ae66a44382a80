package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the project model.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CacheBuilds      *prometheus.CounterVec
	Events           *prometheus.CounterVec
	DroppedReactions *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Collectors that
// are already registered with reg are reused, so several projects can share
// one registry. A nil reg leaves the collectors unregistered. A collector
// that cannot be registered is still returned, unregistered, together with
// the registration error.
func New(reg prometheus.Registerer) (*Metrics, error) {
	var errs []error
	m := &Metrics{
		CacheBuilds: register(reg, &errs, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "i18n_project_cache_builds_total",
			Help: "Total number of project entry cache builds",
		}, []string{"project"})),
		Events: register(reg, &errs, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "i18n_project_events_total",
			Help: "Total number of project events fired, by kind",
		}, []string{"project", "kind"})),
		DroppedReactions: register(reg, &errs, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "i18n_project_reactions_dropped_total",
			Help: "Total number of change reactions dropped because one was already running",
		}, []string{"project"})),
	}
	return m, errors.Join(errs...)
}

func register(reg prometheus.Registerer, errs *[]error, c *prometheus.CounterVec) *prometheus.CounterVec {
	if reg == nil {
		return c
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		*errs = append(*errs, fmt.Errorf("register metrics: %w", err))
	}
	return c
}

func (m *Metrics) IncCacheBuild(project string) {
	if m == nil {
		return
	}
	m.CacheBuilds.WithLabelValues(project).Inc()
}

func (m *Metrics) IncEvent(project, kind string) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(project, kind).Inc()
}

func (m *Metrics) IncDroppedReaction(project string) {
	if m == nil {
		return
	}
	m.DroppedReactions.WithLabelValues(project).Inc()
}

package i18n

import (
	"errors"
	"log/slog"
	"slices"
	"sync"
)

var (
	ErrResourceExists   = errors.New("i18n: resource for language already registered")
	ErrResourceNotFound = errors.New("i18n: resource not registered")
)

///////////////////////////////////////////////////////////////////////////////
// RESOURCE REGISTRY
///////////////////////////////////////////////////////////////////////////////

// ResourceRegistry holds at most one Resource per Language and keeps the
// languages in display order. The order is the merge order of the cache.
type ResourceRegistry struct {
	mu        sync.RWMutex
	resources map[Language]Resource
	order     []Language
	logger    *slog.Logger
}

// NewResourceRegistry creates an empty registry. A nil logger means
// slog.Default().
func NewResourceRegistry(logger *slog.Logger) *ResourceRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceRegistry{
		resources: make(map[Language]Resource),
		logger:    logger,
	}
}

// AddResource registers r. A second resource for the same language is
// rejected with ErrResourceExists and leaves the registry unchanged.
func (g *ResourceRegistry) AddResource(r Resource) error {
	lang := r.Language()
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.resources[lang]; ok {
		g.logger.Warn("resource already registered", "language", lang.String())
		return ErrResourceExists
	}
	g.resources[lang] = r
	g.resort()
	return nil
}

// Remove unregisters the resource of r's language.
func (g *ResourceRegistry) Remove(r Resource) error {
	lang := r.Language()
	g.mu.Lock()
	defer g.mu.Unlock()
	if cur, ok := g.resources[lang]; !ok || cur != r {
		g.logger.Warn("resource not registered", "language", lang.String())
		return ErrResourceNotFound
	}
	delete(g.resources, lang)
	g.resort()
	return nil
}

func (g *ResourceRegistry) Resource(lang Language) (Resource, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.resources[lang]
	return r, ok
}

func (g *ResourceRegistry) Contains(lang Language) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.resources[lang]
	return ok
}

// SortedResources returns the resources in language order.
func (g *ResourceRegistry) SortedResources() []Resource {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Resource, 0, len(g.order))
	for _, lang := range g.order {
		out = append(out, g.resources[lang])
	}
	return out
}

// Languages returns the registered languages in order.
func (g *ResourceRegistry) Languages() []Language {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.order)
}

func (g *ResourceRegistry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.resources)
}

// resort must be called with g.mu held.
func (g *ResourceRegistry) resort() {
	g.order = g.order[:0]
	for lang := range g.resources {
		g.order = append(g.order, lang)
	}
	SortLanguages(g.order)
}

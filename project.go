package i18n

import (
	"errors"
	"log/slog"
	"sync"
	"weak"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lifei6671/i18nproject/internal/metrics"
)

var ErrParentCycle = errors.New("i18n: parent chain would contain a cycle")

type cacheState uint8

const (
	cacheNotBuilt cacheState = iota
	cacheBuilding
	cacheBuilt
)

// Project is the in-memory model of one translation project: the resources
// attached to it, the lazily built entry cache, the parent link and the
// listeners.
type Project struct {
	id      string
	config  Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	registerer prometheus.Registerer

	registry *ResourceRegistry
	bus      *EventBus
	guard    OptimisticLock
	pending  pendingChanges

	mu      sync.RWMutex
	state   cacheState
	entries map[string]*Entry

	// link guards parent, parentSub and unsubs.
	link      sync.Mutex
	parent    weak.Pointer[Project]
	parentSub ListenerID
	unsubs    map[Language]func()
}

type Option func(p *Project)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithRegisterer records cache and event metrics in reg. If the metrics
// cannot be registered the project logs a warning and keeps counting
// without exporting.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Project) {
		p.registerer = reg
	}
}

func WithConfig(cfg Config) Option {
	return func(p *Project) {
		p.config = cfg
	}
}

// NewProject creates a project without resources and without parent. id is
// the host's stable identifier of the project.
func NewProject(id string, opts ...Option) *Project {
	p := &Project{
		id:     id,
		unsubs: make(map[Language]func()),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("project", id)
	if p.registerer != nil {
		m, err := metrics.New(p.registerer)
		if err != nil {
			p.logger.Warn("metrics not registered", "error", err)
		}
		p.metrics = m
	}
	p.config = p.config.withDefaults()
	p.registry = NewResourceRegistry(p.logger)
	p.bus = NewEventBus(p.logger)
	return p
}

func (p *Project) ID() string { return p.id }

func (p *Project) String() string { return "project(" + p.id + ")" }

///////////////////////////////////////////////////////////////////////////////
// RESOURCES
///////////////////////////////////////////////////////////////////////////////

// AddResource attaches r. A resource for an already attached language is
// rejected with ErrResourceExists.
func (p *Project) AddResource(r Resource) error {
	if err := p.registry.AddResource(r); err != nil {
		return err
	}
	remove := r.AddChangeListener(func(ev ResourceEvent) {
		p.onResourceEvent(r, ev)
	})
	p.link.Lock()
	p.unsubs[r.Language()] = remove
	p.link.Unlock()

	p.ResetCache()
	p.fire(ResourceAdded{eventSource: eventSource{project: p}, Language: r.Language()})
	return nil
}

// RemoveResource detaches the resource of lang.
func (p *Project) RemoveResource(lang Language) error {
	r, ok := p.registry.Resource(lang)
	if !ok {
		p.logger.Warn("resource not registered", "language", lang.String())
		return ErrResourceNotFound
	}
	if err := p.registry.Remove(r); err != nil {
		return err
	}
	p.link.Lock()
	remove := p.unsubs[lang]
	delete(p.unsubs, lang)
	p.link.Unlock()
	if remove != nil {
		remove()
	}

	p.ResetCache()
	p.fire(ResourceRemoved{eventSource: eventSource{project: p}, Language: lang})
	return nil
}

func (p *Project) Resource(lang Language) (Resource, bool) {
	return p.registry.Resource(lang)
}

// Resources returns the attached resources in language order.
func (p *Project) Resources() []Resource {
	return p.registry.SortedResources()
}

// Languages returns the languages of the attached resources in order.
func (p *Project) Languages() []Language {
	return p.registry.Languages()
}

// IsReadOnly reports whether at least one attached resource is read-only.
func (p *Project) IsReadOnly() bool {
	for _, r := range p.registry.SortedResources() {
		if r.ReadOnly() {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// PARENT
///////////////////////////////////////////////////////////////////////////////

// Parent returns the parent project, nil if there is none or it has been
// garbage collected.
func (p *Project) Parent() *Project {
	p.link.Lock()
	defer p.link.Unlock()
	return p.parent.Value()
}

// SetParent makes p inherit the entries of parent; nil detaches p from its
// current parent. p only keeps a weak reference to parent; parent keeps p's
// listener until p is detached. A parent whose chain leads back to p is
// rejected with ErrParentCycle.
func (p *Project) SetParent(parent *Project) error {
	for anc := parent; anc != nil; anc = anc.Parent() {
		if anc == p {
			p.logger.Error("parent cycle rejected", "parent", parent.id)
			return ErrParentCycle
		}
	}
	if !p.swapParent(parent) {
		return nil
	}
	p.ResetCache()
	p.fire(FullRefresh{eventSource: eventSource{project: p}})
	return nil
}

func (p *Project) swapParent(parent *Project) bool {
	p.link.Lock()
	defer p.link.Unlock()
	old := p.parent.Value()
	if old == parent {
		return false
	}
	if old != nil {
		old.RemoveProjectListener(p.parentSub)
	}
	p.parent = weak.Pointer[Project]{}
	p.parentSub = ListenerID{}
	if parent != nil {
		p.parent = weak.Make(parent)
		p.parentSub = parent.AddProjectListener(p.onParentEvent)
	}
	return true
}

// Close detaches p from its parent and its resources. The cache is dropped.
func (p *Project) Close() {
	p.swapParent(nil)
	p.link.Lock()
	unsubs := p.unsubs
	p.unsubs = make(map[Language]func())
	p.link.Unlock()
	for _, remove := range unsubs {
		remove()
	}
	p.ResetCache()
}

func (p *Project) parentEntry(key string) *Entry {
	parent := p.Parent()
	if parent == nil {
		return nil
	}
	e, _ := parent.Entry(key)
	return e
}

///////////////////////////////////////////////////////////////////////////////
// LISTENERS
///////////////////////////////////////////////////////////////////////////////

func (p *Project) AddProjectListener(fn ProjectListener) ListenerID {
	return p.bus.Add(fn)
}

func (p *Project) RemoveProjectListener(id ListenerID) bool {
	return p.bus.Remove(id)
}

// Refresh drops the cache and tells the listeners to reload.
func (p *Project) Refresh() {
	p.ResetCache()
	p.fire(Refresh{eventSource: eventSource{project: p}})
}

func (p *Project) fire(ev Event) {
	for _, e := range FlattenEvents(ev) {
		p.metrics.IncEvent(p.id, e.Kind().String())
	}
	p.bus.Fire(ev)
}

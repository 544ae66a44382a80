package i18n

import (
	"maps"
	"slices"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// CHANGE REACTIONS
///////////////////////////////////////////////////////////////////////////////

// react runs apply under the re-entrancy guard and the cache write lock and
// fires the coalesced result once. A reaction triggered while another one
// of p is running is dropped; postpone records what it would have touched
// and the holder of the guard replays it before releasing. If the cache is
// not built there is nothing to apply, but the listeners are told to
// refresh so that children holding a built cache do not go stale.
func (p *Project) react(source string, postpone func(), apply func(b *eventBatch)) {
	if !p.guard.TryAcquire() {
		p.metrics.IncDroppedReaction(p.id)
		p.logger.Debug("re-entrant reaction dropped", "source", source)
		postpone()
		if p.guard.TryAcquire() {
			p.release()
		}
		return
	}

	b := newEventBatch(p)
	p.mu.Lock()
	if p.state != cacheBuilt {
		b.push(Refresh{eventSource: eventSource{project: p}})
	} else {
		apply(b)
	}
	p.mu.Unlock()

	if ev := b.event(); ev != nil {
		p.fire(ev)
	}
	p.release()
}

// release releases the guard after replaying the reactions dropped while
// it was held. A reaction dropped between the replay and the release is
// picked up by whoever acquires the guard next, which may be the caller
// itself.
func (p *Project) release() {
	for {
		p.replayPending()
		p.guard.Release()
		if !p.pending.any() || !p.guard.TryAcquire() {
			return
		}
	}
}

func (p *Project) replayPending() {
	keys, reset := p.pending.take()
	if len(keys) == 0 && !reset {
		return
	}

	b := newEventBatch(p)
	p.mu.Lock()
	switch {
	case p.state != cacheBuilt:
		b.push(Refresh{eventSource: eventSource{project: p}})
	case reset:
		p.resetLocked()
		b.push(Refresh{eventSource: eventSource{project: p}})
	default:
		for _, key := range keys {
			p.refreshKeyLocked(key, b)
		}
	}
	p.mu.Unlock()

	if ev := b.event(); ev != nil {
		p.fire(ev)
	}
}

// pendingChanges collects what dropped reactions would have applied.
type pendingChanges struct {
	mu    sync.Mutex
	keys  map[string]struct{}
	reset bool
}

func (c *pendingChanges) addKeys(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys == nil {
		c.keys = make(map[string]struct{})
	}
	for _, key := range keys {
		c.keys[key] = struct{}{}
	}
}

func (c *pendingChanges) markReset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset = true
}

func (c *pendingChanges) any() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset || len(c.keys) > 0
}

func (c *pendingChanges) take() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := slices.Sorted(maps.Keys(c.keys))
	reset := c.reset
	c.keys, c.reset = nil, false
	return keys, reset
}

// onResourceEvent applies a raw change of r. Every key change, however
// deeply nested, refreshes the entry of its key: an added text creates or
// localizes the entry, a modified text updates it, a removed text clears
// it and drops the entry once no resource defines the key, falling back to
// the parent's entry when there is one.
func (p *Project) onResourceEvent(r Resource, ev ResourceEvent) {
	if cur, ok := p.registry.Resource(r.Language()); !ok || cur != r {
		return
	}
	var keys []string
	for _, c := range FlattenChanges(ev) {
		if !slices.Contains(keys, c.Key) {
			keys = append(keys, c.Key)
		}
	}
	if len(keys) == 0 {
		return
	}
	p.react("resource:"+r.Language().String(),
		func() { p.pending.addKeys(keys) },
		func(b *eventBatch) {
			for _, key := range keys {
				p.refreshKeyLocked(key, b)
			}
		})
}

// onParentEvent mirrors the parent's entry events onto the inherited
// entries of p. Local entries shadow the parent and ignore them. A dropped
// parent event cannot be replayed key by key, p refreshes instead.
func (p *Project) onParentEvent(ev Event) {
	events := FlattenEvents(ev)
	if len(events) == 0 {
		return
	}
	p.react("parent", p.pending.markReset, func(b *eventBatch) {
		for _, e := range events {
			switch e := e.(type) {
			case EntryAdded:
				if _, ok := p.entries[e.Key]; !ok {
					inh := newInheritedEntry(p, e.Key)
					p.entries[e.Key] = inh
					b.add(e.Key, inh)
				}
			case EntryRemoved:
				if cur, ok := p.entries[e.Key]; ok && cur.IsInherited() {
					delete(p.entries, e.Key)
					b.remove(e.Key, cur)
				}
			case EntryModified:
				cur, ok := p.entries[e.Key]
				switch {
				case !ok:
					inh := newInheritedEntry(p, e.Key)
					p.entries[e.Key] = inh
					b.add(e.Key, inh)
				case cur.IsInherited():
					b.modify(e.Key, cur)
				}
			case Refresh, FullRefresh, ResourceAdded, ResourceRemoved:
				p.resetLocked()
				*b = *newEventBatch(p)
				b.push(Refresh{eventSource: eventSource{project: p}})
				return
			}
		}
	})
}

package i18n

import (
	"maps"
	"slices"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// ENTRY CACHE
///////////////////////////////////////////////////////////////////////////////

// ResetCache drops the entry cache. The next read rebuilds it from the
// resources and the parent.
func (p *Project) ResetCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

func (p *Project) resetLocked() {
	p.entries = nil
	p.state = cacheNotBuilt
}

// read runs fn with the built cache. fn must not call back into p.
func (p *Project) read(fn func(entries map[string]*Entry)) {
	p.mu.RLock()
	if p.state == cacheBuilt {
		defer p.mu.RUnlock()
		fn(p.entries)
		return
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.buildLocked()
	fn(p.entries)
}

// buildLocked builds the cache unless it is built. Inherited entries are
// created for all keys of the parent first; every key defined by a local
// resource then becomes a local entry, replacing an inherited one by a
// copy of its data. The texts of the attached languages always come from
// the resources.
func (p *Project) buildLocked() {
	if p.state == cacheBuilt {
		return
	}
	p.state = cacheBuilding
	entries := make(map[string]*Entry)
	if parent := p.Parent(); parent != nil {
		for _, key := range parent.AllKeys() {
			entries[key] = newInheritedEntry(p, key)
		}
	}

	defined := make(map[string]map[Language]string)
	for _, r := range p.registry.SortedResources() {
		lang := r.Language()
		for _, key := range r.Keys() {
			text, ok := r.Translation(key)
			if !ok {
				continue
			}
			if defined[key] == nil {
				defined[key] = make(map[Language]string)
			}
			defined[key][lang] = text
		}
	}
	langs := p.registry.Languages()
	for key, texts := range defined {
		e := entries[key]
		if e == nil {
			e = newLocalEntry(key)
		} else {
			e = e.materialize()
		}
		e.assign(langs, texts)
		entries[key] = e
	}

	p.entries = entries
	p.state = cacheBuilt
	p.metrics.IncCacheBuild(p.id)
	p.logger.Debug("entry cache built", "entries", len(entries))
}

// refreshKeyLocked brings the entry of key in line with the resources and
// the parent and records the resulting event in b:
//
//   - defined by a local resource: a local entry carrying the local texts,
//     an inherited entry is replaced by a local copy first
//   - defined by no local resource but by the parent: an inherited entry
//   - defined nowhere: no entry
//
// An inherited entry whose key the parent dropped is left alone; the
// parent's removal event takes care of it.
func (p *Project) refreshKeyLocked(key string, b *eventBatch) {
	cur := p.entries[key]
	langs := p.registry.Languages()
	defined := make(map[Language]string)
	for _, r := range p.registry.SortedResources() {
		if text, ok := r.Translation(key); ok {
			defined[r.Language()] = text
		}
	}

	if len(defined) == 0 {
		switch {
		case cur != nil && cur.IsInherited():
		case p.parentEntry(key) != nil:
			inh := newInheritedEntry(p, key)
			p.entries[key] = inh
			if cur == nil {
				b.add(key, inh)
			} else {
				b.modify(key, inh)
			}
		case cur != nil:
			delete(p.entries, key)
			b.remove(key, cur)
		}
		return
	}

	switch {
	case cur == nil:
		e := newLocalEntry(key)
		e.assign(langs, defined)
		p.entries[key] = e
		b.add(key, e)
	case cur.IsInherited():
		e := cur.materialize()
		e.assign(langs, defined)
		p.entries[key] = e
		b.modify(key, e)
	default:
		if cur.assign(langs, defined) {
			b.modify(key, cur)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// QUERIES
///////////////////////////////////////////////////////////////////////////////

// AllKeys returns all visible keys, sorted.
func (p *Project) AllKeys() []string {
	var keys []string
	p.read(func(entries map[string]*Entry) {
		keys = slices.Sorted(maps.Keys(entries))
	})
	return keys
}

func (p *Project) Entry(key string) (*Entry, bool) {
	var (
		e  *Entry
		ok bool
	)
	p.read(func(entries map[string]*Entry) {
		e, ok = entries[key]
	})
	return e, ok
}

// Entries returns the entries whose key starts with prefix, sorted by key.
func (p *Project) Entries(prefix string, caseSensitive bool) []*Entry {
	match := func(key string) bool { return strings.HasPrefix(key, prefix) }
	if !caseSensitive {
		lower := strings.ToLower(prefix)
		match = func(key string) bool { return strings.HasPrefix(strings.ToLower(key), lower) }
	}
	var out []*Entry
	p.read(func(entries map[string]*Entry) {
		for key, e := range entries {
			if match(key) {
				out = append(out, e)
			}
		}
	})
	slices.SortFunc(out, compareEntries)
	return out
}

// AllEntries returns every visible entry, sorted by key.
func (p *Project) AllEntries() []*Entry {
	var out []*Entry
	p.read(func(entries map[string]*Entry) {
		out = slices.Collect(maps.Values(entries))
	})
	slices.SortFunc(out, compareEntries)
	return out
}

func (p *Project) Len() int {
	var n int
	p.read(func(entries map[string]*Entry) {
		n = len(entries)
	})
	return n
}

func compareEntries(a, b *Entry) int {
	return strings.Compare(a.key, b.key)
}

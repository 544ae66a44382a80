package i18n

import (
	"maps"
	"slices"
)

// eventBatch accumulates entry events of one reaction so that every key
// ends up with at most one event of its final kind.
type eventBatch struct {
	project  *Project
	added    map[string]*Entry
	removed  map[string]*Entry
	modified map[string]*Entry
	other    []Event
}

func newEventBatch(p *Project) *eventBatch {
	return &eventBatch{
		project:  p,
		added:    make(map[string]*Entry),
		removed:  make(map[string]*Entry),
		modified: make(map[string]*Entry),
	}
}

func (b *eventBatch) add(key string, e *Entry) {
	if _, ok := b.removed[key]; ok {
		delete(b.removed, key)
		b.modified[key] = e
		return
	}
	delete(b.modified, key)
	b.added[key] = e
}

func (b *eventBatch) modify(key string, e *Entry) {
	if _, ok := b.added[key]; ok {
		b.added[key] = e
		return
	}
	b.modified[key] = e
}

func (b *eventBatch) remove(key string, e *Entry) {
	delete(b.modified, key)
	if _, ok := b.added[key]; ok {
		// the key was never visible to listeners
		delete(b.added, key)
		return
	}
	b.removed[key] = e
}

// push appends an event that takes no part in coalescing.
func (b *eventBatch) push(ev Event) {
	b.other = append(b.other, ev)
}

func (b *eventBatch) empty() bool {
	return len(b.added)+len(b.removed)+len(b.modified)+len(b.other) == 0
}

// events returns the coalesced events: added, modified, removed, each
// sorted by key, followed by the structural events.
func (b *eventBatch) events() []Event {
	src := eventSource{project: b.project}
	out := make([]Event, 0, len(b.added)+len(b.modified)+len(b.removed)+len(b.other))
	for _, key := range slices.Sorted(maps.Keys(b.added)) {
		out = append(out, EntryAdded{eventSource: src, Key: key, Entry: b.added[key]})
	}
	for _, key := range slices.Sorted(maps.Keys(b.modified)) {
		out = append(out, EntryModified{eventSource: src, Key: key, Entry: b.modified[key]})
	}
	for _, key := range slices.Sorted(maps.Keys(b.removed)) {
		out = append(out, EntryRemoved{eventSource: src, Key: key, Entry: b.removed[key]})
	}
	return append(out, b.other...)
}

// event folds the batch into a single event, nil if the batch is empty.
func (b *eventBatch) event() Event {
	events := b.events()
	switch len(events) {
	case 0:
		return nil
	case 1:
		return events[0]
	}
	return MultiEvent{eventSource: eventSource{project: b.project}, Events: events}
}

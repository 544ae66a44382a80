package i18n

// EventKind enumerates the project event variants.
type EventKind uint8

const (
	KindEntryAdded EventKind = iota + 1
	KindEntryRemoved
	KindEntryModified
	KindRefresh
	KindFullRefresh
	KindResourceAdded
	KindResourceRemoved
	KindMulti
)

var eventKindNames = map[EventKind]string{
	KindEntryAdded:      "entry_added",
	KindEntryRemoved:    "entry_removed",
	KindEntryModified:   "entry_modified",
	KindRefresh:         "refresh",
	KindFullRefresh:     "full_refresh",
	KindResourceAdded:   "resource_added",
	KindResourceRemoved: "resource_removed",
	KindMulti:           "multi",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a project level change notification. The set of variants is
// closed: EntryAdded, EntryRemoved, EntryModified, Refresh, FullRefresh,
// ResourceAdded, ResourceRemoved and MultiEvent.
type Event interface {
	Kind() EventKind
	// Project returns the project that fired the event.
	Project() *Project
	sealed()
}

type eventSource struct {
	project *Project
}

func (s eventSource) Project() *Project { return s.project }
func (eventSource) sealed()             {}

// EntryAdded reports a key that became visible.
type EntryAdded struct {
	eventSource
	Key   string
	Entry *Entry
}

// EntryRemoved reports a key that is no longer visible. Entry is the last
// entry seen for the key.
type EntryRemoved struct {
	eventSource
	Key   string
	Entry *Entry
}

// EntryModified reports changed texts or a changed provenance of a key.
type EntryModified struct {
	eventSource
	Key   string
	Entry *Entry
}

// Refresh asks listeners to reload everything they read from the project.
type Refresh struct {
	eventSource
}

// FullRefresh is a Refresh caused by a changed parent.
type FullRefresh struct {
	eventSource
}

type ResourceAdded struct {
	eventSource
	Language Language
}

type ResourceRemoved struct {
	eventSource
	Language Language
}

// MultiEvent bundles the events of one coalesced batch.
type MultiEvent struct {
	eventSource
	Events []Event
}

func (EntryAdded) Kind() EventKind      { return KindEntryAdded }
func (EntryRemoved) Kind() EventKind    { return KindEntryRemoved }
func (EntryModified) Kind() EventKind   { return KindEntryModified }
func (Refresh) Kind() EventKind         { return KindRefresh }
func (FullRefresh) Kind() EventKind     { return KindFullRefresh }
func (ResourceAdded) Kind() EventKind   { return KindResourceAdded }
func (ResourceRemoved) Kind() EventKind { return KindResourceRemoved }
func (MultiEvent) Kind() EventKind      { return KindMulti }

// FlattenEvents expands nested MultiEvent values depth first.
func FlattenEvents(ev Event) []Event {
	m, ok := ev.(MultiEvent)
	if !ok {
		return []Event{ev}
	}
	var out []Event
	for _, child := range m.Events {
		out = append(out, FlattenEvents(child)...)
	}
	return out
}

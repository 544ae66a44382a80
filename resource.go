package i18n

import (
	"context"
	"errors"
)

var (
	ErrReadOnly    = errors.New("i18n: resource is read-only")
	ErrKeyNotFound = errors.New("i18n: key not found")
	ErrKeyExists   = errors.New("i18n: key already exists")
	ErrInvalidKey  = errors.New("i18n: invalid key")
)

// Resource is a per-language key -> text store backing a Project.
//
// Implementations notify their change listeners synchronously from the
// mutating call. The context passed to the mutating methods carries the
// caller's cancellation.
type Resource interface {
	Language() Language
	Keys() []string
	Translation(key string) (string, bool)

	UpdateText(ctx context.Context, key, text string, flush bool) error
	UpdateKey(ctx context.Context, oldKey, newKey string) error
	Remove(ctx context.Context, key string) error
	CommitChanges(ctx context.Context) error
	ReadOnly() bool

	// AddChangeListener registers fn and returns a function removing it.
	AddChangeListener(fn func(ResourceEvent)) (remove func())
}

///////////////////////////////////////////////////////////////////////////////
// RAW CHANGE EVENTS
///////////////////////////////////////////////////////////////////////////////

// ChangeKind is the kind of a single key change inside a resource.
type ChangeKind uint8

const (
	ChangeAdd ChangeKind = iota + 1
	ChangeRemove
	ChangeModify
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	case ChangeModify:
		return "modify"
	}
	return "unknown"
}

// ResourceEvent is either a KeyChange or a MultiChange.
type ResourceEvent interface {
	resourceEvent()
}

// KeyChange reports that a single key of a resource changed.
type KeyChange struct {
	Kind     ChangeKind
	Language Language
	Key      string
}

// MultiChange bundles the changes of one bulk edit. Children may be
// MultiChange values themselves.
type MultiChange struct {
	Changes []ResourceEvent
}

func (KeyChange) resourceEvent()   {}
func (MultiChange) resourceEvent() {}

// FlattenChanges returns the key changes of ev depth first, in order.
func FlattenChanges(ev ResourceEvent) []KeyChange {
	var out []KeyChange
	var walk func(ResourceEvent)
	walk = func(ev ResourceEvent) {
		switch e := ev.(type) {
		case KeyChange:
			out = append(out, e)
		case MultiChange:
			for _, c := range e.Changes {
				walk(c)
			}
		}
	}
	walk(ev)
	return out
}

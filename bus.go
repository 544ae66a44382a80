package i18n

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ListenerID identifies a registered project listener.
type ListenerID uuid.UUID

func (id ListenerID) String() string { return uuid.UUID(id).String() }

// ProjectListener receives project events. It is called synchronously on
// the goroutine that fired the event.
type ProjectListener func(Event)

// EventBus delivers events to its listeners in registration order.
// A panicking listener is logged and does not stop the delivery.
type EventBus struct {
	mu        sync.Mutex
	listeners []busListener
	logger    *slog.Logger
}

type busListener struct {
	id ListenerID
	fn ProjectListener
}

func NewEventBus(logger *slog.Logger) *EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventBus{logger: logger}
}

func (b *EventBus) Add(fn ProjectListener) ListenerID {
	id := ListenerID(uuid.New())
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, busListener{id: id, fn: fn})
	return id
}

// Remove unregisters the listener and reports whether it was registered.
func (b *EventBus) Remove(id ListenerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.listeners)
	b.listeners = slices.DeleteFunc(b.listeners, func(l busListener) bool {
		return l.id == id
	})
	return len(b.listeners) != n
}

func (b *EventBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Fire delivers ev to a snapshot of the current listeners.
func (b *EventBus) Fire(ev Event) {
	b.mu.Lock()
	listeners := slices.Clone(b.listeners)
	b.mu.Unlock()
	for _, l := range listeners {
		b.deliver(l, ev)
	}
}

func (b *EventBus) deliver(l busListener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("project listener failed",
				"listener", l.id.String(),
				"event", ev.Kind().String(),
				"error", fmt.Sprint(r))
		}
	}()
	l.fn(ev)
}

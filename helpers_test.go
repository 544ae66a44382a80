package i18n_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	i18n "github.com/lifei6671/i18nproject"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProject(id string, opts ...i18n.Option) *i18n.Project {
	opts = append([]i18n.Option{i18n.WithLogger(discardLogger())}, opts...)
	return i18n.NewProject(id, opts...)
}

func lang(s string) i18n.Language {
	return i18n.MustParseLanguage(s)
}

func mem(code string, texts map[string]string, opts ...i18n.MemoryOption) *i18n.MemoryResource {
	return i18n.NewMemoryResource(lang(code), texts, opts...)
}

func text(t *testing.T, p *i18n.Project, key, code string) string {
	t.Helper()
	e, ok := p.Entry(key)
	if !ok {
		t.Fatalf("entry %q not found in %s", key, p)
	}
	s, _ := e.Text(lang(code))
	return s
}

// recorder collects the events fired by a project.
type recorder struct {
	mu     sync.Mutex
	events []i18n.Event
}

func record(p *i18n.Project) *recorder {
	r := &recorder{}
	p.AddProjectListener(func(ev i18n.Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, ev)
	})
	return r
}

// fired returns the top level events and forgets them.
func (r *recorder) fired() []i18n.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

type flatEvent struct {
	Kind i18n.EventKind
	Key  string
}

// flat returns the flattened kinds and keys of the recorded events and
// forgets them.
func (r *recorder) flat() []flatEvent {
	var out []flatEvent
	for _, ev := range r.fired() {
		for _, e := range i18n.FlattenEvents(ev) {
			fe := flatEvent{Kind: e.Kind()}
			switch e := e.(type) {
			case i18n.EntryAdded:
				fe.Key = e.Key
			case i18n.EntryRemoved:
				fe.Key = e.Key
			case i18n.EntryModified:
				fe.Key = e.Key
			}
			out = append(out, fe)
		}
	}
	return out
}

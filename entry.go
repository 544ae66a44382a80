package i18n

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

var ErrInheritedEntry = errors.New("i18n: inherited entry cannot be modified")

// EntryType tells where an entry comes from.
type EntryType uint8

const (
	// EntryLocal entries are defined by at least one resource of the project.
	EntryLocal EntryType = iota
	// EntryInherited entries are proxies of the parent project's entry.
	EntryInherited
)

func (t EntryType) String() string {
	if t == EntryInherited {
		return "INHERITED"
	}
	return "LOCAL"
}

// Entry holds the texts of one key across all languages.
//
// An inherited entry stores no texts. Every read goes to the parent
// project's current entry of the same key, so it always shows the parent's
// latest data.
type Entry struct {
	key   string
	typ   EntryType
	owner *Project

	mu    sync.RWMutex
	texts map[Language]string
}

func newLocalEntry(key string) *Entry {
	return &Entry{key: key, typ: EntryLocal, texts: make(map[Language]string)}
}

func newInheritedEntry(owner *Project, key string) *Entry {
	return &Entry{key: key, typ: EntryInherited, owner: owner}
}

func (e *Entry) Key() string       { return e.key }
func (e *Entry) Type() EntryType   { return e.typ }
func (e *Entry) IsInherited() bool { return e.typ == EntryInherited }

// Text returns the text for lang. The key language always yields the key.
func (e *Entry) Text(lang Language) (string, bool) {
	if lang.IsKey() {
		return e.key, true
	}
	if e.typ == EntryInherited {
		src := e.source()
		if src == nil {
			return "", false
		}
		return src.Text(lang)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	text, ok := e.texts[lang]
	return text, ok
}

// Texts returns a copy of all texts by language.
func (e *Entry) Texts() map[Language]string {
	if e.typ == EntryInherited {
		src := e.source()
		if src == nil {
			return map[Language]string{}
		}
		return src.Texts()
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.texts)
}

// Languages returns the languages e has a text for, in display order.
func (e *Entry) Languages() []Language {
	langs := slices.Collect(maps.Keys(e.Texts()))
	SortLanguages(langs)
	return langs
}

// Row returns a detached copy of e suitable for Project.UpdateRow.
func (e *Entry) Row() Row {
	return Row{Key: e.key, Texts: e.Texts()}
}

func (e *Entry) source() *Entry {
	if e.owner == nil {
		return nil
	}
	return e.owner.parentEntry(e.key)
}

// assign sets the texts of langs to the values in defined; languages of
// langs missing from defined lose their text. Texts of other languages are
// kept. It reports whether anything changed.
func (e *Entry) assign(langs []Language, defined map[Language]string) bool {
	if e.typ == EntryInherited {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	changed := false
	for _, lang := range langs {
		text, want := defined[lang]
		old, has := e.texts[lang]
		switch {
		case want && (!has || old != text):
			e.texts[lang] = text
			changed = true
		case !want && has:
			delete(e.texts, lang)
			changed = true
		}
	}
	return changed
}

// materialize returns a local copy of e carrying all its current texts.
func (e *Entry) materialize() *Entry {
	local := newLocalEntry(e.key)
	maps.Copy(local.texts, e.Texts())
	return local
}

// Row is a detached set of texts for one key.
type Row struct {
	Key   string
	Texts map[Language]string
}

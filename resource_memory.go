package i18n

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Committer persists the state of a MemoryResource.
type Committer interface {
	// Commit receives a snapshot of all texts and the keys changed since the
	// last successful commit. Keys missing from the snapshot were removed.
	Commit(ctx context.Context, lang Language, texts map[string]string, dirty []string) error
}

// CommitterFunc adapts a function to Committer.
type CommitterFunc func(ctx context.Context, lang Language, texts map[string]string, dirty []string) error

func (f CommitterFunc) Commit(ctx context.Context, lang Language, texts map[string]string, dirty []string) error {
	return f(ctx, lang, texts, dirty)
}

// MemoryResource is an in-memory Resource. It is safe for concurrent use;
// listeners are called outside its lock, in registration order.
type MemoryResource struct {
	lang Language

	mu        sync.RWMutex
	texts     map[string]string
	dirty     map[string]struct{}
	readOnly  bool
	committer Committer

	lmu       sync.Mutex
	listeners []memoryListener
	nextID    uint64
}

type memoryListener struct {
	id uint64
	fn func(ResourceEvent)
}

type MemoryOption func(r *MemoryResource)

// WithReadOnly marks the resource read-only.
func WithReadOnly(readOnly bool) MemoryOption {
	return func(r *MemoryResource) {
		r.readOnly = readOnly
	}
}

// WithCommitter sets the backend called by CommitChanges and flushing
// updates.
func WithCommitter(c Committer) MemoryOption {
	return func(r *MemoryResource) {
		r.committer = c
	}
}

// NewMemoryResource creates a resource for lang holding a copy of texts.
func NewMemoryResource(lang Language, texts map[string]string, opts ...MemoryOption) *MemoryResource {
	r := &MemoryResource{
		lang:  lang,
		texts: make(map[string]string, len(texts)),
		dirty: make(map[string]struct{}),
	}
	maps.Copy(r.texts, texts)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryResource) Language() Language { return r.lang }

func (r *MemoryResource) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.texts))
}

func (r *MemoryResource) Translation(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	text, ok := r.texts[key]
	return text, ok
}

func (r *MemoryResource) ReadOnly() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.readOnly
}

// Snapshot returns a copy of all texts.
func (r *MemoryResource) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.texts)
}

// Dirty reports whether there are uncommitted changes.
func (r *MemoryResource) Dirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.dirty) > 0
}

// DirtyKeys returns the keys with uncommitted changes, sorted.
func (r *MemoryResource) DirtyKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.dirty))
}

func (r *MemoryResource) UpdateText(ctx context.Context, key, text string, flush bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if r.readOnly {
		r.mu.Unlock()
		return fmt.Errorf("update %s/%s: %w", r.lang, key, ErrReadOnly)
	}
	old, exists := r.texts[key]
	if exists && old == text {
		r.mu.Unlock()
		return nil
	}
	r.texts[key] = text
	r.dirty[key] = struct{}{}
	r.mu.Unlock()

	kind := ChangeModify
	if !exists {
		kind = ChangeAdd
	}
	r.fire(KeyChange{Kind: kind, Language: r.lang, Key: key})
	if flush {
		return r.CommitChanges(ctx)
	}
	return nil
}

func (r *MemoryResource) UpdateKey(ctx context.Context, oldKey, newKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if r.readOnly {
		r.mu.Unlock()
		return fmt.Errorf("rename %s/%s: %w", r.lang, oldKey, ErrReadOnly)
	}
	text, ok := r.texts[oldKey]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("rename %s/%s: %w", r.lang, oldKey, ErrKeyNotFound)
	}
	if _, taken := r.texts[newKey]; taken {
		r.mu.Unlock()
		return fmt.Errorf("rename %s/%s to %s: %w", r.lang, oldKey, newKey, ErrKeyExists)
	}
	delete(r.texts, oldKey)
	r.texts[newKey] = text
	r.dirty[oldKey] = struct{}{}
	r.dirty[newKey] = struct{}{}
	r.mu.Unlock()

	r.fire(MultiChange{Changes: []ResourceEvent{
		KeyChange{Kind: ChangeRemove, Language: r.lang, Key: oldKey},
		KeyChange{Kind: ChangeAdd, Language: r.lang, Key: newKey},
	}})
	return nil
}

func (r *MemoryResource) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	if r.readOnly {
		r.mu.Unlock()
		return fmt.Errorf("remove %s/%s: %w", r.lang, key, ErrReadOnly)
	}
	if _, ok := r.texts[key]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("remove %s/%s: %w", r.lang, key, ErrKeyNotFound)
	}
	delete(r.texts, key)
	r.dirty[key] = struct{}{}
	r.mu.Unlock()

	r.fire(KeyChange{Kind: ChangeRemove, Language: r.lang, Key: key})
	return nil
}

// CommitChanges hands the pending changes to the committer. Without a
// committer the changes are simply marked as committed.
func (r *MemoryResource) CommitChanges(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.dirty) == 0 {
		return nil
	}
	if r.committer != nil {
		dirty := slices.Sorted(maps.Keys(r.dirty))
		if err := r.committer.Commit(ctx, r.lang, maps.Clone(r.texts), dirty); err != nil {
			return fmt.Errorf("commit %s: %w", r.lang, err)
		}
	}
	clear(r.dirty)
	return nil
}

// Batch applies several edits and notifies listeners once with a
// MultiChange. Edits in a batch are not marked dirty when clean is true,
// which is what loaders use when the texts came from the backing store.
func (r *MemoryResource) Batch(fn func(b *MemoryBatch)) {
	r.batch(false, fn)
}

func (r *MemoryResource) batch(clean bool, fn func(b *MemoryBatch)) {
	b := &MemoryBatch{r: r, clean: clean}
	r.mu.Lock()
	fn(b)
	r.mu.Unlock()
	switch len(b.changes) {
	case 0:
	case 1:
		r.fire(b.changes[0])
	default:
		r.fire(MultiChange{Changes: b.changes})
	}
}

// Replace swaps the committed content for texts, notifying listeners of
// the difference as one MultiChange. Keys with uncommitted edits keep their
// edited state; they are returned so the caller can report them.
func (r *MemoryResource) Replace(texts map[string]string) []string {
	var kept []string
	r.batch(true, func(b *MemoryBatch) {
		kept = slices.Sorted(maps.Keys(r.dirty))
		for key := range r.texts {
			if _, dirty := r.dirty[key]; dirty {
				continue
			}
			if _, ok := texts[key]; !ok {
				b.Remove(key)
			}
		}
		for _, key := range slices.Sorted(maps.Keys(texts)) {
			if _, dirty := r.dirty[key]; dirty {
				continue
			}
			b.Set(key, texts[key])
		}
	})
	return kept
}

// MemoryBatch collects the edits of MemoryResource.Batch. It must not be
// used after the batch function returns.
type MemoryBatch struct {
	r       *MemoryResource
	clean   bool
	changes []ResourceEvent
}

func (b *MemoryBatch) Set(key, text string) {
	old, exists := b.r.texts[key]
	if exists && old == text {
		return
	}
	b.r.texts[key] = text
	b.touch(key)
	kind := ChangeModify
	if !exists {
		kind = ChangeAdd
	}
	b.changes = append(b.changes, KeyChange{Kind: kind, Language: b.r.lang, Key: key})
}

func (b *MemoryBatch) Remove(key string) {
	if _, ok := b.r.texts[key]; !ok {
		return
	}
	delete(b.r.texts, key)
	b.touch(key)
	b.changes = append(b.changes, KeyChange{Kind: ChangeRemove, Language: b.r.lang, Key: key})
}

func (b *MemoryBatch) touch(key string) {
	if b.clean {
		delete(b.r.dirty, key)
		return
	}
	b.r.dirty[key] = struct{}{}
}

func (r *MemoryResource) AddChangeListener(fn func(ResourceEvent)) func() {
	r.lmu.Lock()
	defer r.lmu.Unlock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, memoryListener{id: id, fn: fn})
	return func() {
		r.lmu.Lock()
		defer r.lmu.Unlock()
		r.listeners = slices.DeleteFunc(r.listeners, func(l memoryListener) bool {
			return l.id == id
		})
	}
}

func (r *MemoryResource) fire(ev ResourceEvent) {
	r.lmu.Lock()
	listeners := slices.Clone(r.listeners)
	r.lmu.Unlock()
	for _, l := range listeners {
		l.fn(ev)
	}
}

package i18n

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// EDITING
///////////////////////////////////////////////////////////////////////////////

// edit runs write, which changes the resources and returns the touched
// keys, and then refreshes those entries and fires the result. write runs
// without any project lock held. While it runs the re-entrancy guard is
// held if it was free, so the notifications echoed by the resources are
// dropped rather than applied a second time.
func (p *Project) edit(write func() []string) {
	if p.guard.TryAcquire() {
		defer p.release()
	}
	p.read(func(map[string]*Entry) {})

	keys := write()

	b := newEventBatch(p)
	p.mu.Lock()
	p.buildLocked()
	for _, key := range keys {
		p.refreshKeyLocked(key, b)
	}
	p.mu.Unlock()
	if ev := b.event(); ev != nil {
		p.fire(ev)
	}
}

// UpdateRow stores the texts of row in the resources of their languages.
// The row is the complete new state of the key: languages with an empty or
// missing text are removed from their resource. Texts of languages without
// a resource are ignored. An inherited key becomes local.
func (p *Project) UpdateRow(ctx context.Context, row Row, flush bool) error {
	if !IsValidKey(row.Key) {
		return fmt.Errorf("update %q: %w", row.Key, ErrInvalidKey)
	}
	var errs []error
	p.edit(func() []string {
		for _, r := range p.registry.SortedResources() {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			if err := writeText(ctx, r, row.Key, row.Texts[r.Language()], flush); err != nil {
				errs = append(errs, fmt.Errorf("update %q in %s: %w", row.Key, r.Language(), err))
			}
		}
		return []string{row.Key}
	})
	return errors.Join(errs...)
}

func writeText(ctx context.Context, r Resource, key, text string, flush bool) error {
	cur, has := r.Translation(key)
	switch {
	case text != "" && (!has || cur != text):
		return r.UpdateText(ctx, key, text, flush)
	case text == "" && has:
		if err := r.Remove(ctx, key); err != nil {
			return err
		}
		if flush {
			return r.CommitChanges(ctx)
		}
	}
	return nil
}

// UpdateKey renames a local key in every resource defining it. If the parent
// defines oldKey too, oldKey stays visible as an inherited entry.
func (p *Project) UpdateKey(ctx context.Context, oldKey, newKey string) error {
	if !IsValidKey(newKey) {
		return fmt.Errorf("rename %q to %q: %w", oldKey, newKey, ErrInvalidKey)
	}
	e, ok := p.Entry(oldKey)
	if !ok {
		p.logger.Error("rename of unknown key", "key", oldKey)
		return fmt.Errorf("rename %q: %w", oldKey, ErrKeyNotFound)
	}
	if e.IsInherited() {
		p.logger.Error("rename of inherited entry", "key", oldKey)
		return fmt.Errorf("rename %q: %w", oldKey, ErrInheritedEntry)
	}
	if _, taken := p.Entry(newKey); taken {
		return fmt.Errorf("rename %q to %q: %w", oldKey, newKey, ErrKeyExists)
	}

	var errs []error
	p.edit(func() []string {
		for _, r := range p.registry.SortedResources() {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			if _, ok := r.Translation(oldKey); !ok {
				continue
			}
			if err := r.UpdateKey(ctx, oldKey, newKey); err != nil {
				errs = append(errs, fmt.Errorf("rename %q in %s: %w", oldKey, r.Language(), err))
			}
		}
		return []string{oldKey, newKey}
	})
	return errors.Join(errs...)
}

// RemoveEntries removes the keys from every resource defining them. A
// resource that fails a removal is skipped for the remaining keys; the
// resources that removed something are committed at the end, also when ctx
// is cancelled half way. Keys the parent defines fall back to inherited
// entries. Each entry is updated atomically, the batch as a whole is not.
func (p *Project) RemoveEntries(ctx context.Context, keys []string) error {
	var errs []error
	failed := make(map[Language]bool)
	touched := make(map[Language]Resource)

	p.edit(func() []string {
		var done []string
		for _, key := range keys {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			e, ok := p.Entry(key)
			if !ok {
				p.logger.Warn("remove of unknown key", "key", key)
				continue
			}
			if e.IsInherited() {
				p.logger.Error("remove of inherited entry", "key", key)
				errs = append(errs, fmt.Errorf("remove %q: %w", key, ErrInheritedEntry))
				continue
			}
			for _, r := range p.registry.SortedResources() {
				lang := r.Language()
				if failed[lang] {
					continue
				}
				if _, ok := r.Translation(key); !ok {
					continue
				}
				if err := r.Remove(ctx, key); err != nil {
					failed[lang] = true
					errs = append(errs, fmt.Errorf("remove %q from %s: %w", key, lang, err))
					continue
				}
				touched[lang] = r
			}
			done = append(done, key)
		}
		return done
	})

	flushCtx := context.WithoutCancel(ctx)
	for lang, r := range touched {
		if failed[lang] {
			continue
		}
		if err := r.CommitChanges(flushCtx); err != nil {
			errs = append(errs, fmt.Errorf("commit %s: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}

// CommitChanges flushes all resources concurrently. A failing resource does
// not keep the others from being flushed; all failures are returned.
func (p *Project) CommitChanges(ctx context.Context) error {
	resources := p.registry.SortedResources()
	errs := make([]error, len(resources))
	var g errgroup.Group
	for i, r := range resources {
		g.Go(func() error {
			if err := r.CommitChanges(ctx); err != nil {
				errs[i] = fmt.Errorf("commit %s: %w", r.Language(), err)
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

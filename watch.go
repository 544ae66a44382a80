package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events an editor produces on save.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the file whenever it changes on disk until ctx is done.
// Reloads are reported to the change listeners like any other edit. The
// directory is watched rather than the file so that editors replacing the
// file by rename are noticed.
func (r *YAMLResource) Watch(ctx context.Context, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	logger = logger.With("file", r.path, "language", r.Language().String())
	logger.Info("watching translation file")

	go r.watchLoop(ctx, watcher, logger)
	return nil
}

func (r *YAMLResource) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, logger *slog.Logger) {
	defer watcher.Close()

	target := filepath.Clean(r.path)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			if err := r.Reload(); err != nil {
				logger.Warn("reload failed", "error", err)
				continue
			}
			if kept := r.DirtyKeys(); len(kept) > 0 {
				logger.Warn("reload kept uncommitted edits", "keys", kept)
			}
			logger.Debug("translation file reloaded")
		}
	}
}

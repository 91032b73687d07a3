package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 500 * time.Millisecond

// Watcher re-loads a configuration file whenever it changes and keeps the
// last snapshot that validated.
type Watcher struct {
	path        string
	environment string
	logger      *slog.Logger
	debounce    time.Duration
	onChange    func(*Snapshot, error)

	mu      sync.RWMutex
	current *Snapshot
}

// NewWatcher creates a watcher for path. onChange is called after every
// reload attempt with either the new snapshot or the load error.
func NewWatcher(path, environment string, logger *slog.Logger, onChange func(*Snapshot, error)) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		path:        filepath.Clean(path),
		environment: environment,
		logger:      logger.With("component", "config-watch"),
		debounce:    defaultWatchDebounce,
		onChange:    onChange,
	}
}

// SetDebounce overrides the quiet period between the last file event and the reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Current returns the last valid snapshot, or nil before the first successful load.
func (w *Watcher) Current() *Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Reload loads and validates the file. On failure the previous snapshot is kept.
func (w *Watcher) Reload() error {
	snap, _, exists, err := Load(w.path, w.environment)
	if err == nil && !exists {
		err = fmt.Errorf("config file %s does not exist", w.path)
	}
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		if w.onChange != nil {
			w.onChange(nil, err)
		}
		return err
	}

	w.mu.Lock()
	w.current = snap
	w.mu.Unlock()

	w.logger.Info("config reloaded", "path", w.path, "environment", snap.Environment)
	if w.onChange != nil {
		w.onChange(snap, nil)
	}
	return nil
}

// Run performs an initial load and then watches the file until ctx is done.
// The parent directory is watched so editors that replace the file by rename
// are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	_ = w.Reload()
	w.logger.Info("watching config file", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("config file changed", "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = w.Reload()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

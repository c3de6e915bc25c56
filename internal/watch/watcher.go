// Package watch re-runs a callback whenever a manifest file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quantmind-br/testmanifest/internal/utils"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a single manifest file. The parent directory is watched
// rather than the file itself so that editors which replace the file on save
// keep being followed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *utils.Logger
}

// New creates a watcher for path.
func New(path string, debounce time.Duration, logger *utils.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("no manifest path to watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger.OrNop().WithComponent("watch").WithManifest(abs),
	}, nil
}

// Watch blocks until ctx is cancelled, calling onChange after every burst of
// writes to the manifest. Errors from onChange are logged and watching
// continues.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	deb := newDebouncer(w.debounce)
	defer deb.stop()

	fire := func() {
		w.logger.Info().Msg("Manifest changed")
		if err := onChange(); err != nil {
			w.logger.Error().Err(err).Msg("Manifest check failed")
		}
	}

	w.logger.Info().Dur("debounce", w.debounce).Msg("File watcher started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("File watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("File event detected")
			deb.trigger(fire)

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error().Err(err).Msg("File watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}

// debouncer collapses rapid triggers into one call after a quiet period.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}

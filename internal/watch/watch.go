// Package watch wraps fsnotify for the generate --watch mode: it
// watches a palette file and invokes a regenerate callback after
// debouncing editor save bursts.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gutcheck/gutcheck-palette/internal/logger"
)

// DefaultDebounce is the default interval for collapsing change bursts.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a single palette file for changes.
type Watcher struct {
	path     string
	debounce time.Duration
	fw       *fsnotify.Watcher
}

// New creates a Watcher for the given palette file. A non-positive
// debounce falls back to DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, not the file: many editors replace the
	// file on save, which drops a file-level watch.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{path: path, debounce: debounce, fw: fw}, nil
}

// Run blocks, invoking onChange after each debounced burst of changes
// to the watched file, until the context is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.fw.Close() }()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("palette file changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// matches reports whether the event concerns the watched file with an
// operation that changes its contents.
func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// Package watch monitors a catalog file via fsnotify and re-runs planning
// when it changes, backing the CLI's --watch mode.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/stemline-bio/mscplan/pkg/log"
)

// DefaultDebounce is the delay after a file event before the callback runs;
// editors typically emit several events per save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher invokes a callback whenever the watched catalog file is written.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for path. A non-positive debounce selects the
// default; a nil logger discards messages.
func New(path string, debounce time.Duration, logger log.Logger, onChange func()) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
}

// Run watches until the context is canceled. The parent directory is
// watched, not the file itself, so atomic-rename saves keep working.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching catalog", log.String("path", w.path))

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("catalog changed", log.String("op", event.Op.String()))
			w.scheduleChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("catalog watcher error", log.Err(err))
		}
	}
}

// scheduleChange (re)arms the debounce timer.
func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

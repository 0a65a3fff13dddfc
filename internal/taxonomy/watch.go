package taxonomy

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Store when *.yaml files in a directory change. Bursts of
// events (editors writing temp files, multi-file deploys) collapse into one
// reload after the debounce interval.
type Watcher struct {
	store    *Store
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
	done     chan struct{}
	onReload func(error)
}

// NewWatcher creates a watcher for dir. Call Start to begin watching.
func NewWatcher(store *Store, dir string, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return &Watcher{
		store:    store,
		dir:      dir,
		debounce: 500 * time.Millisecond,
		logger:   logger,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// OnReload registers fn to be called after every reload the watcher
// triggers. Must be called before Start.
func (w *Watcher) OnReload(fn func(error)) {
	w.onReload = fn
}

// Start runs the event loop until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Wait blocks until the event loop has exited and the watcher is closed.
func (w *Watcher) Wait() {
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("taxonomy file changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("taxonomy watcher error", slog.Any("error", err))

		case <-timer.C:
			_, err := w.store.Reload()
			if w.onReload != nil {
				w.onReload(err)
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".yaml") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

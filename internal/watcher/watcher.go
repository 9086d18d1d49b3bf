package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"setpiece-service/internal/logging"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher triggers a callback when the report file changes on disk. The
// parent directory is watched rather than the file itself, because editors
// and scp commonly replace files via rename, which drops a direct watch.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context)
	logger   *slog.Logger
}

// New constructs a watcher for path invoking onChange after writes settle.
func New(path string, debounce time.Duration, onChange func(context.Context), logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
}

// Start begins watching until the context is cancelled. It returns an error
// only when the watch cannot be established.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.loop(ctx, fsw)
	logging.Info(w.logger, "report watcher started", slog.String(logging.FieldPath, w.path))
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer fsw.Close()

	var timer *time.Timer
	var timerC <-chan time.Time
	base := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logging.Info(w.logger, "report watcher stopped")
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !relevant(event.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			logging.Info(w.logger, "report changed, re-extracting", slog.String(logging.FieldPath, w.path))
			if w.onChange != nil {
				w.onChange(ctx)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Error(w.logger, "report watcher error", err)
		}
	}
}

// relevant filters to operations that change file content or identity.
func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}

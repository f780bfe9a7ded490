package recipe

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/lumberlib/internal/foundation/errors"
	"git.home.luguber.info/inful/lumberlib/internal/logfields"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher monitors a recipe file and invokes a callback after changes settle.
type Watcher struct {
	path     string
	onChange func(ctx context.Context)
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	changes  chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must be quiet before onChange runs.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the watcher's logger.
func WithWatcherLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher creates a watcher for path. onChange runs on its own goroutine,
// never concurrently with itself.
func NewWatcher(path string, onChange func(ctx context.Context), opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.FileSystemError("failed to resolve recipe path").
			Wrap(err).
			WithContext(logfields.KeyPath, path).
			Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.RuntimeError("failed to create file watcher").Wrap(err).Build()
	}

	w := &Watcher{
		path:     absPath,
		onChange: onChange,
		watcher:  fw,
		logger:   slog.Default(),
		debounce: defaultDebounce,
		changes:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute recipe path.
func (w *Watcher) Path() string { return w.path }

// Start begins monitoring. The directory is watched rather than the file so
// editors that replace the file on save are still observed.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return errors.FileSystemError("failed to watch recipe directory").
			Wrap(err).
			WithContext(logfields.KeyPath, dir).
			Build()
	}

	w.logger.Info("Watching recipe", logfields.Path(w.path))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop ends monitoring and waits for the loops to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				w.logger.Debug("Recipe change detected", logfields.Path(event.Name), slog.String("event", event.Op.String()))
				w.trigger()
			case event.Has(fsnotify.Remove):
				w.logger.Warn("Recipe removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Recipe watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.changes:
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.onChange(ctx)
		}
	}
}

// trigger requests a debounced callback.
func (w *Watcher) trigger() {
	select {
	case w.changes <- struct{}{}:
	default:
		// already pending
	}
}

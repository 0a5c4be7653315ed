package tailwind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/carbon-eel/eel/pkg/logger"
)

// DefaultDebounce groups bursts of file events (editors often write twice) into one flush.
const DefaultDebounce = 200 * time.Millisecond

// Flusher is anything holding state derived from the watched configuration.
type Flusher interface {
	Flush() error
}

// Watcher flushes a Flusher when watched configuration files change.
type Watcher struct {
	mu       sync.Mutex
	flusher  Flusher
	paths    []string
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
	logger   *slog.Logger
	onFlush  func()

	watcher *fsnotify.Watcher
	pending time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDebounce sets the quiet period before a flush.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnFlush registers a callback invoked after every flush.
func WithOnFlush(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.onFlush = fn
	}
}

// NewWatcher creates a Watcher for the given files and directories.
// Nothing is watched until Start is called.
func NewWatcher(flusher Flusher, paths []string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		flusher:  flusher,
		paths:    paths,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		debounce: DefaultDebounce,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. It does not block; events are handled in a goroutine
// until Stop is called or ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if len(w.paths) == 0 {
		return ErrNoWatchPaths
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrCreateWatcher, err)
	}

	for _, p := range w.paths {
		if err := w.add(fw, p); err != nil {
			_ = fw.Close()
			return err
		}
	}

	w.watcher = fw
	w.pending = time.Time{}
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.run(ctx, fw, w.stopCh, w.doneCh)

	w.logger.InfoContext(ctx, "watching tailwind configuration", slog.Any("paths", w.paths))
	return nil
}

// add watches a directory directly, or the parent directory of a file.
// Watching the parent keeps working when editors replace the file.
func (w *Watcher) add(fw *fsnotify.Watcher, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatchPath, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatchPath, path, err)
	}

	dir := abs
	if info.IsDir() {
		w.dirs[abs] = struct{}{}
	} else {
		w.files[abs] = struct{}{}
		dir = filepath.Dir(abs)
	}

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatchPath, path, err)
	}
	return nil
}

// Stop stops watching and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// Running reports whether the event loop is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer func() {
		if err := fw.Close(); err != nil {
			w.logger.Error("failed to close file watcher", logger.Error(err))
		}
	}()

	tick := max(w.debounce/4, 10*time.Millisecond)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case <-stopCh:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("tailwind configuration watcher error", logger.Error(err))

		case now := <-ticker.C:
			w.flushIfSettled(now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !w.relevant(event.Name) {
		return
	}

	w.logger.Debug("tailwind configuration changed",
		logger.Path(event.Name),
		slog.String("op", event.Op.String()),
	)

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if _, ok := w.files[abs]; ok {
		return true
	}
	_, ok := w.dirs[filepath.Dir(abs)]
	return ok
}

func (w *Watcher) flushIfSettled(now time.Time) {
	w.mu.Lock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if err := w.flusher.Flush(); err != nil {
		w.logger.Warn("tailwind configuration reload failed, keeping the previous configuration", logger.Error(err))
	} else {
		w.logger.Info("tailwind merge cache flushed")
	}
	if w.onFlush != nil {
		w.onFlush()
	}
}

package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is used when fsnotify is unavailable.
const DefaultPollInterval = 2 * time.Second

// Watcher calls onChange, debounced, whenever a single file is written,
// created, renamed into place or removed.
type Watcher struct {
	path         string
	onChange     func()
	onError      func(error)
	debouncer    *Debouncer
	pollInterval time.Duration
	forcePoll    bool

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	stopCh  chan struct{}
	wg      sync.WaitGroup
	polling bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// WithPollInterval sets the fallback polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.pollInterval = d
	}
}

// WithPolling skips fsnotify and polls modification times.
func WithPolling() Option {
	return func(w *Watcher) {
		w.forcePoll = true
	}
}

// WithErrorHandler receives errors reported by fsnotify.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New creates a watcher for path. Nothing is watched until Start.
func New(path string, onChange func(), opts ...Option) *Watcher {
	w := &Watcher{
		path:         filepath.Clean(path),
		onChange:     onChange,
		debouncer:    NewDebouncer(0),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The parent directory is watched rather than the file
// so that editors which save by renaming a temp file are still seen.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopCh != nil {
		return errors.New("watcher: already started")
	}
	w.stopCh = make(chan struct{})

	if !w.forcePoll {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			if err = fsw.Add(filepath.Dir(w.path)); err == nil {
				w.fsw = fsw
				w.wg.Add(1)
				go w.loop(fsw, w.stopCh)
				return nil
			}
			fsw.Close()
		}
	}

	w.polling = true
	w.wg.Add(1)
	go w.poll(w.stopCh)
	return nil
}

// Stop ends watching and cancels any pending callback.
func (w *Watcher) Stop() {
	w.mu.Lock()
	stopCh := w.stopCh
	fsw := w.fsw
	w.stopCh = nil
	w.fsw = nil
	w.mu.Unlock()

	if stopCh == nil {
		return
	}
	close(stopCh)
	if fsw != nil {
		fsw.Close()
	}
	w.wg.Wait()
	w.debouncer.Cancel()
}

// Polling reports whether the watcher fell back to polling.
func (w *Watcher) Polling() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.polling
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) loop(fsw *fsnotify.Watcher, stopCh <-chan struct{}) {
	defer w.wg.Done()
	for {
		select {
		case <-stopCh:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.debouncer.Trigger(w.onChange)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) poll(stopCh <-chan struct{}) {
	defer w.wg.Done()
	last := modTime(w.path)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			mt := modTime(w.path)
			if !mt.Equal(last) {
				last = mt
				w.debouncer.Trigger(w.onChange)
			}
		}
	}
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// Package config provides change notification for configuration and
// theme files. The renderer never reloads mid draw cycle; the host drains
// Events between cycles and rebuilds its editor/theme state before the
// next bind.
package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("config: watcher is closed")

// defaultDebounce coalesces editor save bursts (write + rename dances)
// into one reload event.
const defaultDebounce = 100 * time.Millisecond

// Event reports that a watched file changed and should be reloaded.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	// Time is when the change was observed.
	Time time.Time
}

// Watcher monitors configuration files and delivers debounced change
// events.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	files   map[string]bool
	events  chan Event
	closed  bool
	done    chan struct{}

	debounce time.Duration
	pending  map[string]*time.Timer
}

// NewWatcher creates a watcher with the default debounce interval.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		files:    make(map[string]bool),
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		debounce: defaultDebounce,
		pending:  make(map[string]*time.Timer),
	}
	go w.loop()
	return w, nil
}

// Watch adds a file to the watch set. The containing directory is
// watched, not the file itself, so saves that replace the file (the
// common editor pattern) are still observed.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[abs] {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.files[abs] = true
	return nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher. The events channel is closed after any pending
// debounced events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	close(w.events)
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(ev.Name)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable for a config reload
			// loop; the stale config simply stays active.
		}
	}
}

// schedule (re)arms the debounce timer for a watched file.
func (w *Watcher) schedule(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[abs] {
		return
	}
	if timer, ok := w.pending[abs]; ok {
		timer.Stop()
	}
	// The send happens under the mutex, after re-checking closed: Close
	// marks closed under the same mutex before it closes the events
	// channel, so a callback can never send after the close.
	w.pending[abs] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.pending, abs)
		if w.closed {
			return
		}
		select {
		case w.events <- Event{Path: abs, Time: time.Now()}:
		default:
			// Drop rather than block; a reload is already queued.
		}
	})
}

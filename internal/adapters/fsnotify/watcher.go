// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the parent directory of every registered file, filters events down to
// those files, and debounces rapid events (editors often trigger multiple writes per save).
package fsnotify

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event of a burst.
const DefaultDebounce = 50 * time.Millisecond

// ErrNoPaths is returned by Watch when given nothing to watch.
var ErrNoPaths = errors.New("no paths to watch")

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	stopped  bool
	mu       sync.Mutex

	// OnError receives errors reported by fsnotify. Nil drops them.
	OnError func(error)
}

// NewWatcher creates a new file system watcher with DefaultDebounce.
func NewWatcher() (*Watcher, error) {
	return NewWatcherWithDebounce(DefaultDebounce)
}

// NewWatcherWithDebounce creates a watcher that waits d after the last event
// on a file before reporting it.
func NewWatcherWithDebounce(d time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: d,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring paths. onChange is called with the path as given,
// once per burst of write/create/remove/rename events on it.
func (w *Watcher) Watch(paths []string, onChange func(path string)) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}

	// Map absolute path -> caller's spelling.
	wanted := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		wanted[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.loop(wanted, onChange)
	return nil
}

func (w *Watcher) loop(wanted map[string]string, onChange func(string)) {
	defer w.wg.Done()

	// Pending bursts: caller path -> deadline.
	pending := make(map[string]time.Time)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	rearm := func() {
		var next time.Time
		for _, at := range pending {
			if next.IsZero() || at.Before(next) {
				next = at
			}
		}
		if !next.IsZero() {
			timer.Reset(time.Until(next))
		}
	}

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			orig, ok := wanted[abs]
			if !ok {
				continue
			}
			pending[orig] = time.Now().Add(w.debounce)
			rearm()

		case <-timer.C:
			now := time.Now()
			for orig, at := range pending {
				if at.After(now) {
					continue
				}
				delete(pending, orig)
				select {
				case <-w.done:
					return
				default:
				}
				onChange(orig)
			}
			rearm()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.OnError != nil {
				w.OnError(err)
			}

		case <-w.done:
			return
		}
	}
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

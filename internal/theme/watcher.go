package theme

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write bursts into a single reload.
const debounceDelay = 100 * time.Millisecond

// Watcher watches every file in a theme's include chain and invokes a
// callback when any of them changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func()
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the given chain files. The callback runs
// on the watcher goroutine after changes settle.
func NewWatcher(chain []string, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(chain))
	for _, f := range chain {
		files[f] = true
	}

	return &Watcher{
		watcher:  w,
		files:    files,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The containing directories are watched rather than
// the files themselves, which survives editors that replace files on save.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about files in the include chain
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("theme file changed", "file", event.Name)
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}

		case <-timer.C:
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("theme watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}

package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before reloading.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors the config file and regenerates icons when it changes
type Watcher struct {
	path     string
	reload   func() error
	log      zerolog.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	events  chan Event
	done    chan struct{}

	mu      sync.Mutex // guards timer
	timer   *time.Timer
	running sync.Mutex // serializes reloads
	stop    sync.Once
}

// Event reports the outcome of one reload
type Event struct {
	Path string
	Err  error
}

// New creates a watcher for the file at path. reload is called after each
// settled change.
func New(path string, reload func() error, log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		reload:   reload,
		log:      log,
		debounce: DefaultDebounce,
		watcher:  fsWatcher,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the settle delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins monitoring. The parent directory is watched so editors that
// save by rename are still seen.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	w.log.Info().Str("file", w.path).Msg("Watching config")

	go w.processEvents()
	return nil
}

// processEvents filters fsnotify events down to the config file
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Config changed")
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("Watcher error")

		case <-w.done:
			return
		}
	}
}

// schedule (re)arms the debounce timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.handleChange)
}

// handleChange runs one reload and reports it
func (w *Watcher) handleChange() {
	select {
	case <-w.done:
		return
	default:
	}

	w.running.Lock()
	err := w.reload()
	w.running.Unlock()

	if err != nil {
		w.log.Error().Err(err).Msg("Regeneration failed, keeping previous icons")
	} else {
		w.log.Info().Msg("Icons regenerated")
	}

	select {
	case w.events <- Event{Path: w.path, Err: err}:
	case <-w.done:
	}
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	var err error
	w.stop.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		err = w.watcher.Close()
	})
	return err
}

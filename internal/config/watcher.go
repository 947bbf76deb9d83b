package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/keybind/internal/ignore"
	"github.com/chatter/keybind/internal/logger"
)

// Watcher reports changes to the profile's directory. It watches the
// directory rather than the file because atomic saves replace the file.
// Editor scratch files and atomic-write temp files are filtered out.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filtered chan fsnotify.Event
	done     chan struct{}
	log      *logger.Logger
	ignore   *ignore.Matcher
}

// NewWatcher starts watching the directory holding path, creating it if
// needed.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	dir := filepath.Dir(path)
	log.Debug("creating profile watcher", "dir", dir)

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)

		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		log.Error("failed to watch config directory", "dir", dir, "err", err)
		watcher.Close()

		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	self := &Watcher{
		watcher:  watcher,
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
		log:      log,
		ignore:   ignore.NewMatcher(dir),
	}

	go self.filterEvents()

	log.Info("profile watcher started", "dir", dir)

	return self, nil
}

// Events returns the channel of filtered fsnotify events.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}

	return nil
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldForward(event) {
				continue
			}

			w.log.Debug("profile change detected", "path", event.Name, "op", event.Op.String())

			// Drop the event when one is already pending; a single reload
			// covers a burst of writes.
			select {
			case w.filtered <- event:
			default:
				w.log.Debug("watcher event dropped (pending)", "path", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.log.Warn("watcher error", "err", err)
			}
		}
	}
}

// shouldForward reports whether an event should be sent to consumers.
func (w *Watcher) shouldForward(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	info, err := os.Stat(event.Name)
	isDir := err == nil && info.IsDir()

	return !w.ignore.Match(event.Name, isDir)
}

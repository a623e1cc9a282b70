package storage

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"personal-diary/internal/logger"
)

const DefaultWatchDelay = 250 * time.Millisecond

// Watcher reports changes made to the diary file by anyone, including other
// processes. The parent directory is watched so that the file being created,
// removed or replaced is noticed too.
type Watcher struct {
	path      string
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	onChange  func()
	logger    logger.Logger
	done      chan struct{}
	closeOnce sync.Once
}

func NewWatcher(path string, delay time.Duration, log logger.Logger, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve diary path: %w", err)
	}
	if log == nil {
		log = logger.NoOp{}
	}
	if delay <= 0 {
		delay = DefaultWatchDelay
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:      abs,
		watcher:   fw,
		debouncer: NewDebouncer(delay),
		onChange:  onChange,
		logger:    log,
		done:      make(chan struct{}),
	}, nil
}

// Start runs the event loop in its own goroutine until Shutdown.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug("Watcher", "diary file event", map[string]interface{}{
				"op": event.Op.String(),
			})
			w.debouncer.Debounce(w.path, w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher", err, map[string]interface{}{
				"path": w.path,
			})

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Shutdown() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.Clear()
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Watcher", err, nil)
		}
		w.logger.Info("Watcher", "stopped", map[string]interface{}{
			"path": w.path,
		})
	})
}

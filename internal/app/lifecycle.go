package app

import (
	"sync"

	"personal-diary/internal/debug"
	"personal-diary/internal/gui"
	"personal-diary/internal/logger"
	"personal-diary/internal/storage"
)

type Lifecycle struct {
	debugCoord *debug.Coordinator
	guiManager *gui.Manager
	watcher    *storage.Watcher
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(dc *debug.Coordinator, gm *gui.Manager, w *storage.Watcher, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		debugCoord: dc,
		guiManager: gm,
		watcher:    w,
		logger:     log,
	}
}

// Shutdown runs once no matter how many exit paths reach it.
func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if l.watcher != nil {
			l.watcher.Shutdown()
			l.logger.Debug("Lifecycle", "watcher stopped", nil)
		}

		if l.guiManager != nil {
			l.guiManager.Shutdown()
		}

		// Debug coordinator last so it sees every handle closed above.
		if l.debugCoord != nil {
			l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
			l.debugCoord.Shutdown()
		}
	})
}

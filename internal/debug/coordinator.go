// Package debug bundles the diagnostics used while the diary runs: the
// shared logger, per-operation timings and a tracker for open diary handles.
package debug

import (
	"personal-diary/internal/logger"
)

type Config struct {
	EnableTimingTracking bool
	EnableFileTracking   bool
}

// Coordinator combines all debug capabilities.
type Coordinator struct {
	logger        logger.Logger
	timingTracker *TimingTracker
	fileTracker   *FileTracker
}

func NewCoordinator(config Config, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NoOp{}
	}

	timingTracker := NewTimingTracker(log)
	timingTracker.SetEnabled(config.EnableTimingTracking)

	fileTracker := NewFileTracker(log)
	fileTracker.SetEnabled(config.EnableFileTracking)

	return &Coordinator{
		logger:        log,
		timingTracker: timingTracker,
		fileTracker:   fileTracker,
	}
}

// Discard is a coordinator that logs nothing and tracks nothing, for tests
// and tools that do not care about diagnostics.
func Discard() *Coordinator {
	return NewCoordinator(Config{}, logger.NoOp{})
}

func (dc *Coordinator) Logger() logger.Logger {
	return dc.logger
}

func (dc *Coordinator) TimingTracker() *TimingTracker {
	return dc.timingTracker
}

func (dc *Coordinator) FileTracker() *FileTracker {
	return dc.fileTracker
}

// Shutdown logs the average time of each tracked operation and reports
// handles that were never closed.
func (dc *Coordinator) Shutdown() {
	for _, op := range dc.timingTracker.Operations() {
		dc.logger.Info("Debug", "operation timing", map[string]interface{}{
			"operation": op,
			"count":     len(dc.timingTracker.GetTimings(op)),
			"average":   dc.timingTracker.GetAverageTime(op).String(),
		})
	}

	for _, leak := range dc.fileTracker.GetOpenFiles() {
		dc.logger.Warning("Debug", "diary file handle still open at shutdown", map[string]interface{}{
			"path":      leak.Path,
			"opened_at": leak.OpenedAt,
		})
	}
	dc.logger.Debug("Debug", "coordinator shut down", nil)
}

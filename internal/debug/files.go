package debug

import (
	"sync"
	"time"

	"personal-diary/internal/logger"
)

type FileInfo struct {
	Path     string
	Handle   uintptr
	OpenedAt time.Time
}

// FileTracker keeps the set of diary file handles that are currently open.
type FileTracker struct {
	openFiles map[uintptr]FileInfo
	mu        sync.RWMutex
	logger    logger.Logger
	enabled   bool
}

func NewFileTracker(log logger.Logger) *FileTracker {
	return &FileTracker{
		openFiles: make(map[uintptr]FileInfo),
		logger:    log,
		enabled:   true,
	}
}

func (ft *FileTracker) TrackOpen(path string, handle uintptr) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	ft.openFiles[handle] = FileInfo{
		Path:     path,
		Handle:   handle,
		OpenedAt: time.Now(),
	}

	ft.logger.Debug("FileTracker", "file opened", map[string]interface{}{
		"path":   path,
		"handle": handle,
	})
}

func (ft *FileTracker) TrackClose(path string, handle uintptr) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	info, exists := ft.openFiles[handle]
	if !exists {
		return
	}
	delete(ft.openFiles, handle)

	ft.logger.Debug("FileTracker", "file closed", map[string]interface{}{
		"path":     path,
		"handle":   handle,
		"duration": time.Since(info.OpenedAt).String(),
	})
}

func (ft *FileTracker) GetOpenFiles() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make([]FileInfo, 0, len(ft.openFiles))
	for _, v := range ft.openFiles {
		result = append(result, v)
	}
	return result
}

func (ft *FileTracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}

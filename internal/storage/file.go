package storage

import (
	"errors"
	"io/fs"
	"os"

	"personal-diary/internal/apperr"
	"personal-diary/internal/debug"
	"personal-diary/internal/logger"
)

// FileStore reads and writes the single diary text file.
//
// There is no locking and Overwrite is not atomic: two processes writing the
// same file can interleave, and a crash during Overwrite can leave it truncated.
type FileStore struct {
	path   string
	files  *debug.FileTracker
	logger logger.Logger
}

func NewFileStore(path string, dc *debug.Coordinator) *FileStore {
	if dc == nil {
		dc = debug.Discard()
	}
	return &FileStore{
		path:   path,
		files:  dc.FileTracker(),
		logger: dc.Logger(),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Append writes text at the end of the file, creating it when absent.
func (s *FileStore) Append(text string) (err error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperr.Wrap(err, apperr.KindStorage, "OPEN_FAILED", "open diary for append")
	}

	handle := f.Fd()
	s.files.TrackOpen(s.path, handle)
	defer func() {
		closeErr := f.Close()
		s.files.TrackClose(s.path, handle)
		if err == nil && closeErr != nil {
			err = apperr.Wrap(closeErr, apperr.KindStorage, "CLOSE_FAILED", "close diary")
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		return apperr.Wrap(err, apperr.KindStorage, "WRITE_FAILED", "append to diary")
	}

	s.logger.Debug("FileStore", "appended", map[string]interface{}{
		"path":  s.path,
		"bytes": len(text),
	})
	return nil
}

// ReadAll returns the whole file. A missing file yields apperr.ErrMissingFile;
// callers that only need counts treat that as empty content.
func (s *FileStore) ReadAll() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperr.ErrMissingFile
		}
		return "", apperr.Wrap(err, apperr.KindStorage, "READ_FAILED", "read diary")
	}
	return string(data), nil
}

// Overwrite truncates the file and writes text in its place.
func (s *FileStore) Overwrite(text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return apperr.Wrap(err, apperr.KindStorage, "OVERWRITE_FAILED", "rewrite diary")
	}

	s.logger.Debug("FileStore", "rewritten", map[string]interface{}{
		"path":  s.path,
		"bytes": len(text),
	})
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"personal-diary/internal/apperr"
	"personal-diary/internal/debug"
	"personal-diary/internal/diary"
	"personal-diary/internal/logger"
	"personal-diary/internal/models"
)

// Store is the persistence the journal needs. storage.FileStore satisfies it.
type Store interface {
	Append(text string) error
	ReadAll() (string, error)
	Overwrite(text string) error
}

// Journal implements every diary operation on top of a Store. All methods
// are synchronous and meant to be called from the UI goroutine.
type Journal struct {
	store  Store
	timing *debug.TimingTracker
	logger logger.Logger
	now    func() time.Time
}

// NewJournal creates a journal service
func NewJournal(store Store, dc *debug.Coordinator) *Journal {
	if dc == nil {
		dc = debug.Discard()
	}
	return &Journal{
		store:  store,
		timing: dc.TimingTracker(),
		logger: dc.Logger(),
		now:    time.Now,
	}
}

// Save validates the form input and appends the entry to the diary.
func (j *Journal) Save(date, mood, body string) (models.Entry, error) {
	defer j.timing.Track("save")()

	entry := models.NewEntry(date, mood, body, j.now())
	if entry.IsEmpty() {
		return models.Entry{}, apperr.ErrEmptyEntry
	}
	if !models.ValidMood(entry.Mood) {
		return models.Entry{}, apperr.ErrInvalidMood
	}

	if err := j.store.Append(diary.FormatEntry(entry)); err != nil {
		j.logger.Error("Journal", err, map[string]interface{}{"operation": "save"})
		return models.Entry{}, fmt.Errorf("save entry: %w", err)
	}

	j.logger.Info("Journal", "entry saved", map[string]interface{}{
		"date":  entry.Date,
		"mood":  entry.Mood,
		"bytes": len(entry.Body),
	})
	return entry, nil
}

// Content returns the raw diary for viewing. A missing file is reported as
// apperr.ErrMissingFile.
func (j *Journal) Content() (string, error) {
	defer j.timing.Track("view")()

	content, err := j.store.ReadAll()
	if err != nil {
		return "", j.readErr(err)
	}
	return content, nil
}

// Blocks returns the parsed entries of the diary in file order.
func (j *Journal) Blocks() ([]diary.Block, error) {
	content, err := j.Content()
	if err != nil {
		return nil, err
	}
	return diary.Parse(content), nil
}

// Stats counts entries and words. A missing file counts as empty.
func (j *Journal) Stats() (diary.Stats, error) {
	content, err := j.store.ReadAll()
	if err != nil {
		if errors.Is(err, apperr.ErrMissingFile) {
			return diary.Stats{}, nil
		}
		return diary.Stats{}, j.readErr(err)
	}
	return diary.ComputeStats(content), nil
}

// Search returns the entries containing keyword. The keyword is checked
// before the file is touched so an empty one is a plain no-op.
func (j *Journal) Search(keyword string) (diary.Result, error) {
	defer j.timing.Track("search")()

	if keyword == "" {
		return diary.Result{}, apperr.ErrEmptyKeyword
	}

	content, err := j.store.ReadAll()
	if err != nil {
		return diary.Result{}, j.readErr(err)
	}

	res, err := diary.Search(content, keyword)
	if err != nil {
		return diary.Result{}, err
	}

	j.logger.Debug("Journal", "search completed", map[string]interface{}{
		"matches": len(res.Blocks),
	})
	return res, nil
}

// EditFragment replaces the first occurrence of fragment anywhere in the
// diary with replacement and rewrites the file.
func (j *Journal) EditFragment(fragment, replacement string) error {
	if replacement == "" {
		return apperr.ErrEmptyReplacement
	}
	return j.rewrite("edit_fragment", func(content string) (string, error) {
		return diary.ReplaceFirst(content, fragment, replacement)
	})
}

// DeleteFragment removes the first occurrence of fragment from the diary.
func (j *Journal) DeleteFragment(fragment string) error {
	return j.rewrite("delete_fragment", func(content string) (string, error) {
		return diary.RemoveFirst(content, fragment)
	})
}

// EditEntry replaces the text of the entry at index.
func (j *Journal) EditEntry(index int, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperr.ErrEmptyReplacement
	}
	return j.rewrite("edit_entry", func(content string) (string, error) {
		return diary.ReplaceBlock(content, index, text)
	})
}

// DeleteEntry removes the entry at index and its separator.
func (j *Journal) DeleteEntry(index int) error {
	return j.rewrite("delete_entry", func(content string) (string, error) {
		return diary.RemoveBlock(content, index)
	})
}

func (j *Journal) rewrite(operation string, change func(string) (string, error)) error {
	defer j.timing.Track(operation)()

	content, err := j.store.ReadAll()
	if err != nil {
		return j.readErr(err)
	}

	updated, err := change(content)
	if err != nil {
		return err
	}

	if err := j.store.Overwrite(updated); err != nil {
		j.logger.Error("Journal", err, map[string]interface{}{"operation": operation})
		return fmt.Errorf("%s: %w", operation, err)
	}

	j.logger.Info("Journal", "diary rewritten", map[string]interface{}{
		"operation":    operation,
		"bytes_before": len(content),
		"bytes_after":  len(updated),
	})
	return nil
}

func (j *Journal) readErr(err error) error {
	if errors.Is(err, apperr.ErrMissingFile) {
		return err
	}
	j.logger.Error("Journal", err, map[string]interface{}{"operation": "read"})
	return fmt.Errorf("read diary: %w", err)
}

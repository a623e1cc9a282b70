package app

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"

	"personal-diary/internal/apperr"
	"personal-diary/internal/diary"
	"personal-diary/internal/gui"
	"personal-diary/internal/logger"
	"personal-diary/internal/models"
	"personal-diary/internal/services"
)

const (
	savedMessage = "✨ Entry saved successfully! ✨"
	viewerTitle  = "💌 My Diary Entries 💌"
)

// Handlers reacts to the main window and viewer buttons. Every method runs on
// the Fyne event goroutine.
type Handlers struct {
	fyneApp    fyne.App
	guiManager *gui.Manager
	journal    *services.Journal
	state      *models.AppState
	logger     logger.Logger

	dialogs    gui.Dialogs
	dialogsFor func(fyne.Window) gui.Dialogs
	quit       func()

	viewers []openViewer
}

func NewHandlers(a fyne.App, gm *gui.Manager, journal *services.Journal, state *models.AppState, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NoOp{}
	}
	dlg := gui.NewWindowDialogs(gm.GetWindow())
	return &Handlers{
		fyneApp:    a,
		guiManager: gm,
		journal:    journal,
		state:      state,
		logger:     log,
		dialogs:    dlg,
		dialogsFor: func(w fyne.Window) gui.Dialogs { return dlg.For(w) },
		quit:       a.Quit,
	}
}

func (h *Handlers) HandleSave() {
	form := h.guiManager.Form()
	date, mood, body := form.Values()

	if _, err := h.journal.Save(date, mood, body); err != nil {
		h.report(h.dialogs, err, "Save Entry")
		return
	}

	form.ClearBody()
	h.dialogs.Info("Saved", savedMessage)
	h.RefreshStats()
}

func (h *Handlers) HandleView() {
	content, err := h.journal.Content()
	if err == nil && strings.TrimSpace(content) == "" {
		err = apperr.ErrMissingFile
	}
	if err != nil {
		h.report(h.dialogs, err, "View Entries")
		return
	}

	h.openViewer(viewerTitle, content, diary.Parse(content), h.loadAll)
}

func (h *Handlers) HandleSearch() {
	h.dialogs.Prompt("Search", "Enter keyword:", h.state.LastSearch(), func(keyword string) {
		if keyword == "" {
			return
		}
		h.state.SetLastSearch(keyword)

		res, err := h.journal.Search(keyword)
		if err != nil {
			h.report(h.dialogs, err, "Search")
			return
		}

		h.openViewer("Search Results for '"+keyword+"'", res.Text, res.Blocks, func() (string, []diary.Block, error) {
			return h.loadSearch(keyword)
		})
	})
}

func (h *Handlers) HandleThemeChange(name models.ThemeName) {
	h.state.SetTheme(name)
	gui.ApplyTheme(h.fyneApp, name)
	h.logger.Info("Handlers", "theme applied", map[string]interface{}{"theme": string(name)})
}

func (h *Handlers) HandleExit() {
	h.logger.Info("Handlers", "exit requested", nil)
	h.quit()
}

// RefreshStats recomputes the stats line from the file on disk.
func (h *Handlers) RefreshStats() {
	stats, err := h.journal.Stats()
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{"operation": "stats"})
		return
	}
	h.guiManager.SetStats(stats.String())
}

// report maps an error to the dialog its kind calls for.
func (h *Handlers) report(d gui.Dialogs, err error, title string) {
	title = apperr.Title(err, title)
	msg := apperr.UserMessage(err)

	switch apperr.KindOf(err) {
	case apperr.KindMissingFile, apperr.KindNoResults:
		d.Info(title, msg)
	case apperr.KindEmptyInput, apperr.KindInvalidInput, apperr.KindNoSelection, apperr.KindFragmentNotFound:
		d.Warn(title, msg)
	default:
		h.logger.Error("Handlers", err, map[string]interface{}{"title": title})
		d.Error(title, msg)
	}
}

func (h *Handlers) loadAll() (string, []diary.Block, error) {
	content, err := h.journal.Content()
	if err != nil {
		return "", nil, err
	}
	return content, diary.Parse(content), nil
}

func (h *Handlers) loadSearch(keyword string) (string, []diary.Block, error) {
	res, err := h.journal.Search(keyword)
	if err != nil {
		return "", nil, err
	}
	return res.Text, res.Blocks, nil
}

// isEmptyView reports errors that just mean there is nothing left to show.
func isEmptyView(err error) bool {
	return errors.Is(err, apperr.ErrMissingFile) || errors.Is(err, apperr.ErrNoResults)
}

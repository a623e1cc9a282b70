package app

import (
	"strings"

	"personal-diary/internal/apperr"
	"personal-diary/internal/diary"
	"personal-diary/internal/gui"
)

const deleteConfirm = "Are you sure you want to delete this entry?"

type viewSource func() (string, []diary.Block, error)

// entryView is the part of gui.Viewer the edit and delete handlers drive.
type entryView interface {
	Selection() string
	PickedBlock() (diary.Block, bool)
	Pick(i int)
	Text() string
	SetContent(text string, blocks []diary.Block)
}

var _ entryView = (*gui.Viewer)(nil)

type openViewer struct {
	viewer *gui.Viewer
	source viewSource
}

func (h *Handlers) openViewer(title, text string, blocks []diary.Block, source viewSource) *gui.Viewer {
	v := gui.NewViewer(h.fyneApp, title)
	v.SetContent(text, blocks)

	d := h.dialogsFor(v.Window())
	v.SetEditHandler(func() { h.handleEdit(v, d, source) })
	v.SetDeleteHandler(func() { h.handleDelete(v, d, source) })
	v.Window().SetOnClosed(func() { h.forgetViewer(v) })

	h.viewers = append(h.viewers, openViewer{viewer: v, source: source})
	v.Show()

	h.logger.Debug("Handlers", "viewer opened", map[string]interface{}{
		"title":   title,
		"entries": len(blocks),
	})
	return v
}

// handleEdit prefers a text selection. Without one it falls back to the entry
// picked in the viewer and replaces that entry as a whole.
func (h *Handlers) handleEdit(v entryView, d gui.Dialogs, source viewSource) {
	if sel := v.Selection(); sel != "" {
		d.EditText("Edit Entry", sel, func(replacement string) {
			if replacement == "" {
				return
			}
			if h.applyChange(v, d, source, "Edit Entry", h.journal.EditFragment(sel, replacement)) {
				d.Info("Updated", "Entry updated successfully!")
			}
		})
		return
	}

	if b, ok := v.PickedBlock(); ok {
		d.EditText("Edit Entry", strings.TrimSpace(b.Text), func(text string) {
			if strings.TrimSpace(text) == "" {
				return
			}
			if h.applyChange(v, d, source, "Edit Entry", h.journal.EditEntry(b.Index, text)) {
				repick(v, b.Index, source)
				d.Info("Updated", "Entry updated successfully!")
			}
		})
		return
	}

	h.report(d, apperr.ErrNoSelection.WithUserMessage("Select an entry to edit."), "Edit Entry")
}

func (h *Handlers) handleDelete(v entryView, d gui.Dialogs, source viewSource) {
	var remove func() error

	if sel := v.Selection(); sel != "" {
		remove = func() error { return h.journal.DeleteFragment(sel) }
	} else if b, ok := v.PickedBlock(); ok {
		remove = func() error { return h.journal.DeleteEntry(b.Index) }
	} else {
		h.report(d, apperr.ErrNoSelection.WithUserMessage("Select an entry to delete."), "Delete Entry")
		return
	}

	d.Confirm("Delete Entry", deleteConfirm, func() {
		if h.applyChange(v, d, source, "Delete Entry", remove()) {
			d.Info("Deleted", "Entry deleted successfully!")
		}
	})
}

// applyChange reports err, or re-renders the view and the stats line. It
// returns whether the change was written.
func (h *Handlers) applyChange(v entryView, d gui.Dialogs, source viewSource, title string, err error) bool {
	if err != nil {
		h.report(d, err, title)
		return false
	}

	h.reload(v, d, source)
	h.RefreshStats()
	return true
}

func (h *Handlers) reload(v entryView, d gui.Dialogs, source viewSource) {
	text, blocks, err := source()
	if err != nil {
		if !isEmptyView(err) {
			h.report(d, err, "Reload")
		}
		v.SetContent("", nil)
		return
	}
	v.SetContent(text, blocks)
}

// repick selects the entry with file index again after a reload, so the user
// stays on the entry they just edited.
func repick(v entryView, index int, source viewSource) {
	_, blocks, err := source()
	if err != nil {
		return
	}
	for i, b := range blocks {
		if b.Index == index {
			v.Pick(i)
			return
		}
	}
}

// refreshViewers re-reads every open viewer, e.g. after the file changed on
// disk. Viewers whose text did not change keep their pick and selection.
func (h *Handlers) refreshViewers() {
	for _, ov := range h.viewers {
		text, blocks, err := ov.source()
		if err != nil {
			text, blocks = "", nil
		}
		if text == ov.viewer.Text() {
			continue
		}
		ov.viewer.SetContent(text, blocks)
	}
}

func (h *Handlers) forgetViewer(v *gui.Viewer) {
	for i, ov := range h.viewers {
		if ov.viewer == v {
			h.viewers = append(h.viewers[:i], h.viewers[i+1:]...)
			return
		}
	}
}

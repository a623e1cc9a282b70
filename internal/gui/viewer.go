package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"personal-diary/internal/diary"
)

const (
	ViewerWidth  = 600
	ViewerHeight = 500
)

// Viewer is a secondary window listing diary text, either the whole file or
// a search subset. Changes typed into the text area are never saved; only
// the Edit and Delete buttons write to the diary.
type Viewer struct {
	window       fyne.Window
	text         *widget.Entry
	picker       *widget.Select
	EditButton   *widget.Button
	DeleteButton *widget.Button

	blocks []diary.Block
	picked int

	editHandler   func()
	deleteHandler func()
}

func NewViewer(a fyne.App, title string) *Viewer {
	v := &Viewer{picked: -1}

	v.window = a.NewWindow(title)
	v.window.Resize(fyne.NewSize(ViewerWidth, ViewerHeight))

	v.text = widget.NewMultiLineEntry()
	v.text.Wrapping = fyne.TextWrapWord

	v.picker = widget.NewSelect(nil, v.onPick)
	v.picker.PlaceHolder = "Pick an entry (or select text)"

	v.EditButton = widget.NewButton("✏️ Edit Selected", v.onEdit)
	v.DeleteButton = widget.NewButton("🗑️ Delete Selected", v.onDelete)
	v.DeleteButton.Importance = widget.DangerImportance

	buttons := container.NewGridWithColumns(2, v.EditButton, v.DeleteButton)
	v.window.SetContent(container.NewBorder(v.picker, buttons, nil, nil, v.text))

	return v
}

// SetContent replaces the shown text and the entries offered by the picker.
// Any previous pick is cleared.
func (v *Viewer) SetContent(text string, blocks []diary.Block) {
	v.blocks = blocks
	v.picked = -1

	labels := make([]string, len(blocks))
	for i, b := range blocks {
		labels[i] = b.Label()
	}
	v.picker.Options = labels
	v.picker.ClearSelected()
	v.picker.Refresh()

	v.text.SetText(text)
}

func (v *Viewer) Text() string {
	return v.text.Text
}

// Selection returns the text currently highlighted in the text area.
func (v *Viewer) Selection() string {
	return v.text.SelectedText()
}

// PickedBlock returns the entry chosen in the picker, if any. Its Index is
// the position in the whole diary, not in this view.
func (v *Viewer) PickedBlock() (diary.Block, bool) {
	if v.picked < 0 || v.picked >= len(v.blocks) {
		return diary.Block{}, false
	}
	return v.blocks[v.picked], true
}

// Pick selects the i-th entry of this view in the picker.
func (v *Viewer) Pick(i int) {
	if i < 0 || i >= len(v.picker.Options) {
		return
	}
	v.picker.SetSelectedIndex(i)
}

func (v *Viewer) Window() fyne.Window {
	return v.window
}

func (v *Viewer) Show() {
	v.window.Show()
}

func (v *Viewer) Close() {
	v.window.Close()
}

func (v *Viewer) SetEditHandler(handler func()) {
	v.editHandler = handler
}

func (v *Viewer) SetDeleteHandler(handler func()) {
	v.deleteHandler = handler
}

func (v *Viewer) onPick(string) {
	v.picked = v.picker.SelectedIndex()
}

func (v *Viewer) onEdit() {
	if v.editHandler != nil {
		v.editHandler()
	}
}

func (v *Viewer) onDelete() {
	if v.deleteHandler != nil {
		v.deleteHandler()
	}
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the four main window commands in a 2x2 grid.
type Toolbar struct {
	container    *fyne.Container
	SaveButton   *widget.Button
	ViewButton   *widget.Button
	SearchButton *widget.Button
	ExitButton   *widget.Button

	saveHandler   func()
	viewHandler   func()
	searchHandler func()
	exitHandler   func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.SaveButton = widget.NewButton("💾 Save Entry", t.onSave)
	t.SaveButton.Importance = widget.HighImportance
	t.ViewButton = widget.NewButton("📖 View Entries", t.onView)
	t.SearchButton = widget.NewButton("🔍 Search Entries", t.onSearch)
	t.ExitButton = widget.NewButton("❌ Exit", t.onExit)
	t.ExitButton.Importance = widget.DangerImportance

	t.container = container.NewPadded(container.NewGridWithColumns(2,
		t.SaveButton, t.ViewButton,
		t.SearchButton, t.ExitButton,
	))
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetViewHandler(handler func()) {
	t.viewHandler = handler
}

func (t *Toolbar) SetSearchHandler(handler func()) {
	t.searchHandler = handler
}

func (t *Toolbar) SetExitHandler(handler func()) {
	t.exitHandler = handler
}

func (t *Toolbar) onSave() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) onView() {
	if t.viewHandler != nil {
		t.viewHandler()
	}
}

func (t *Toolbar) onSearch() {
	if t.searchHandler != nil {
		t.searchHandler()
	}
}

func (t *Toolbar) onExit() {
	if t.exitHandler != nil {
		t.exitHandler()
	}
}

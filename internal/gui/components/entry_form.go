package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"personal-diary/internal/models"
)

// EntryForm collects the date, mood and body of a new entry.
type EntryForm struct {
	container  *fyne.Container
	DateEntry  *widget.Entry
	MoodSelect *widget.Select
	BodyEntry  *widget.Entry
}

func NewEntryForm() *EntryForm {
	f := &EntryForm{}

	f.DateEntry = widget.NewEntry()
	f.DateEntry.SetPlaceHolder(models.DateLayout)

	f.MoodSelect = widget.NewSelect(models.Moods, nil)
	f.MoodSelect.PlaceHolder = models.DefaultMood

	f.BodyEntry = widget.NewMultiLineEntry()
	f.BodyEntry.Wrapping = fyne.TextWrapWord
	f.BodyEntry.SetPlaceHolder("Dear diary...")
	f.BodyEntry.SetMinRowsVisible(14)

	fields := container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabel("Date (YYYY-MM-DD, optional):"), f.DateEntry),
		container.NewVBox(widget.NewLabel("Mood:"), f.MoodSelect),
	)

	f.container = container.NewBorder(fields, nil, nil, nil, f.BodyEntry)
	return f
}

// Values returns the raw date, mood and body. Mood is empty until one is picked.
func (f *EntryForm) Values() (date, mood, body string) {
	return f.DateEntry.Text, f.MoodSelect.Selected, f.BodyEntry.Text
}

// ClearBody empties the editor after a save. Date and mood are kept.
func (f *EntryForm) ClearBody() {
	f.BodyEntry.SetText("")
}

func (f *EntryForm) GetContainer() *fyne.Container {
	return f.container
}

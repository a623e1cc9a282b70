package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Dialogs is the set of modal interactions the handlers need. It is an
// interface so handlers can be tested without a window.
type Dialogs interface {
	Info(title, message string)
	Warn(title, message string)
	Error(title, message string)
	// Fatal shows an error and runs onClosed once it is dismissed.
	Fatal(title, message string, onClosed func())
	Confirm(title, message string, onConfirm func())
	// Prompt asks for a single line of text seeded with initial. onSubmit is
	// not called on cancel.
	Prompt(title, label, initial string, onSubmit func(string))
	// EditText asks for multi-line text seeded with initial.
	EditText(title, initial string, onSubmit func(string))
}

// WindowDialogs shows dialogs on top of a Fyne window.
type WindowDialogs struct {
	window fyne.Window
}

func NewWindowDialogs(window fyne.Window) *WindowDialogs {
	return &WindowDialogs{window: window}
}

// For returns dialogs bound to another window, e.g. an open viewer.
func (d *WindowDialogs) For(window fyne.Window) *WindowDialogs {
	return &WindowDialogs{window: window}
}

func (d *WindowDialogs) Info(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func (d *WindowDialogs) Warn(title, message string) {
	dialog.ShowInformation("⚠️ "+title, message, d.window)
}

func (d *WindowDialogs) Error(title, message string) {
	d.errorDialog(title, message).Show()
}

func (d *WindowDialogs) Fatal(title, message string, onClosed func()) {
	dlg := d.errorDialog(title, message)
	dlg.SetOnClosed(onClosed)
	dlg.Show()
}

func (d *WindowDialogs) errorDialog(title, message string) dialog.Dialog {
	content := container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(message))
	return dialog.NewCustom(title, "OK", content, d.window)
}

func (d *WindowDialogs) Confirm(title, message string, onConfirm func()) {
	dialog.ShowConfirm(title, message, func(ok bool) {
		if ok && onConfirm != nil {
			onConfirm()
		}
	}, d.window)
}

func (d *WindowDialogs) Prompt(title, label, initial string, onSubmit func(string)) {
	input := widget.NewEntry()
	input.SetText(initial)
	items := []*widget.FormItem{widget.NewFormItem(label, input)}

	dialog.ShowForm(title, "OK", "Cancel", items, func(ok bool) {
		if ok && onSubmit != nil {
			onSubmit(input.Text)
		}
	}, d.window)
}

func (d *WindowDialogs) EditText(title, initial string, onSubmit func(string)) {
	input := widget.NewMultiLineEntry()
	input.Wrapping = fyne.TextWrapWord
	input.SetText(initial)
	input.SetMinRowsVisible(6)
	items := []*widget.FormItem{widget.NewFormItem("New text", input)}

	dlg := dialog.NewForm(title, "Save", "Cancel", items, func(ok bool) {
		if ok && onSubmit != nil {
			onSubmit(input.Text)
		}
	}, d.window)
	dlg.Resize(fyne.NewSize(480, 320))
	dlg.Show()
}

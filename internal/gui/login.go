package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoginScreen asks for the diary password once.
type LoginScreen struct {
	window        fyne.Window
	PasswordEntry *widget.Entry
	UnlockButton  *widget.Button
	CancelButton  *widget.Button

	unlockHandler func(string)
	cancelHandler func()
	answered      bool
}

func NewLoginScreen(a fyne.App) *LoginScreen {
	l := &LoginScreen{}

	l.window = a.NewWindow("🔐 Login")
	l.window.Resize(fyne.NewSize(320, 160))
	l.window.SetFixedSize(true)

	l.PasswordEntry = widget.NewPasswordEntry()
	l.PasswordEntry.SetPlaceHolder("Password")
	l.PasswordEntry.OnSubmitted = func(string) { l.onUnlock() }

	l.UnlockButton = widget.NewButton("🔓 Unlock", l.onUnlock)
	l.UnlockButton.Importance = widget.HighImportance
	l.CancelButton = widget.NewButton("Cancel", l.onCancel)

	l.window.SetContent(container.NewVBox(
		widget.NewLabel("Enter Password:"),
		l.PasswordEntry,
		container.NewGridWithColumns(2, l.CancelButton, l.UnlockButton),
	))
	l.window.SetCloseIntercept(l.onCancel)

	return l
}

func (l *LoginScreen) Window() fyne.Window {
	return l.window
}

func (l *LoginScreen) Show() {
	l.window.CenterOnScreen()
	l.window.Show()
	l.window.Canvas().Focus(l.PasswordEntry)
}

func (l *LoginScreen) Close() {
	l.window.Close()
}

// SetUnlockHandler receives the typed password.
func (l *LoginScreen) SetUnlockHandler(handler func(string)) {
	l.unlockHandler = handler
}

// SetCancelHandler runs when the prompt is dismissed without a password.
func (l *LoginScreen) SetCancelHandler(handler func()) {
	l.cancelHandler = handler
}

// Only the first answer counts; there is no retry.
func (l *LoginScreen) onUnlock() {
	if l.answered {
		return
	}
	l.answered = true
	if l.unlockHandler != nil {
		l.unlockHandler(l.PasswordEntry.Text)
	}
}

func (l *LoginScreen) onCancel() {
	if l.answered {
		return
	}
	l.answered = true
	if l.cancelHandler != nil {
		l.cancelHandler()
	}
}

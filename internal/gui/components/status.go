package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the entry and word counts under the editor.
type StatusBar struct {
	container  *fyne.Container
	statsLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statsLabel = widget.NewLabel("📖 Entries: 0 | 📝 Words: 0")
	sb.statsLabel.Alignment = fyne.TextAlignCenter
	sb.container = container.NewCenter(sb.statsLabel)
	return sb
}

// SetStats replaces the stats text.
func (sb *StatusBar) SetStats(text string) {
	sb.statsLabel.SetText(text)
}

// GetStats returns the current stats text
func (sb *StatusBar) GetStats() string {
	return sb.statsLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"personal-diary/internal/models"
)

// DiaryTheme overrides the background, input and foreground colours of the
// default Fyne theme with one of the diary palettes.
type DiaryTheme struct {
	name    models.ThemeName
	palette models.Palette
}

var _ fyne.Theme = (*DiaryTheme)(nil)

func NewDiaryTheme(name models.ThemeName) *DiaryTheme {
	return &DiaryTheme{name: name, palette: models.PaletteFor(name)}
}

func (t *DiaryTheme) Name() models.ThemeName {
	return t.name
}

func (t *DiaryTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.palette.Background
	case theme.ColorNameInputBackground:
		return t.palette.TextBackground
	case theme.ColorNameForeground:
		return t.palette.Foreground
	}
	return theme.DefaultTheme().Color(name, t.variant())
}

func (t *DiaryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *DiaryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *DiaryTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func (t *DiaryTheme) variant() fyne.ThemeVariant {
	if t.name == models.ThemeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// ApplyTheme switches the whole application, open windows included.
func ApplyTheme(a fyne.App, name models.ThemeName) {
	a.Settings().SetTheme(NewDiaryTheme(name))
}

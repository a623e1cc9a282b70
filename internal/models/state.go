package models

import (
	"fmt"
	"image/color"
	"sync"
)

// ThemeName identifies one of the built-in palettes.
type ThemeName string

const (
	ThemeLight ThemeName = "Light"
	ThemeDark  ThemeName = "Dark"
)

// ThemeNames is the order shown in the theme selector.
var ThemeNames = []string{string(ThemeLight), string(ThemeDark)}

// Palette holds the three colours the diary window uses.
type Palette struct {
	Background     color.NRGBA
	TextBackground color.NRGBA
	Foreground     color.NRGBA
}

var palettes = map[ThemeName]Palette{
	ThemeLight: {
		Background:     color.NRGBA{R: 0xff, G: 0xf0, B: 0xf5, A: 0xff},
		TextBackground: color.NRGBA{R: 0xff, G: 0xfa, B: 0xf0, A: 0xff},
		Foreground:     color.NRGBA{R: 0x3c, G: 0x09, B: 0x6c, A: 0xff},
	},
	ThemeDark: {
		Background:     color.NRGBA{R: 0x2e, G: 0x2e, B: 0x2e, A: 0xff},
		TextBackground: color.NRGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff},
		Foreground:     color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	},
}

// ParseTheme validates a theme name coming from configuration or the selector.
func ParseTheme(name string) (ThemeName, error) {
	t := ThemeName(name)
	if _, ok := palettes[t]; !ok {
		return "", fmt.Errorf("unknown theme %q", name)
	}
	return t, nil
}

// PaletteFor returns the colours for t, falling back to the light palette.
func PaletteFor(t ThemeName) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// AppState is the mutable presentation state shared by the windows of one
// application instance.
type AppState struct {
	mu         sync.RWMutex
	theme      ThemeName
	lastSearch string
}

func NewAppState(theme ThemeName) *AppState {
	if _, ok := palettes[theme]; !ok {
		theme = ThemeLight
	}
	return &AppState{theme: theme}
}

func (s *AppState) Theme() ThemeName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *AppState) SetTheme(t ThemeName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
}

func (s *AppState) LastSearch() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSearch
}

func (s *AppState) SetLastSearch(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSearch = keyword
}

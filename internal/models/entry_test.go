package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntryDefaults(t *testing.T) {
	now := time.Date(2024, 3, 9, 22, 15, 0, 0, time.Local)

	e := NewEntry("   ", "", "  dear diary \n", now)

	assert.Equal(t, "2024-03-09", e.Date)
	assert.Equal(t, DefaultMood, e.Mood)
	assert.Equal(t, "dear diary", e.Body)
	assert.False(t, e.IsEmpty())
}

func TestNewEntryKeepsFreeFormDate(t *testing.T) {
	e := NewEntry("last tuesday", "😎 Cool", "x", time.Now())

	assert.Equal(t, "last tuesday", e.Date)
	assert.Equal(t, "😎 Cool", e.Mood)
}

func TestValidMood(t *testing.T) {
	assert.True(t, ValidMood(DefaultMood))
	for _, m := range Moods {
		assert.True(t, ValidMood(m), m)
	}

	assert.False(t, ValidMood(""))
	assert.False(t, ValidMood("banana] [x"))
	assert.False(t, ValidMood("😊 happy"), "labels are matched exactly")
}

func TestEntryIsEmpty(t *testing.T) {
	assert.True(t, NewEntry("", "", " \n\t", time.Now()).IsEmpty())
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	_, err = ParseTheme("dark")
	assert.Error(t, err, "theme names are case-sensitive")

	assert.Equal(t, PaletteFor(ThemeLight), PaletteFor("Solarized"))
}

func TestAppState(t *testing.T) {
	s := NewAppState("nope")
	assert.Equal(t, ThemeLight, s.Theme())

	s.SetTheme(ThemeDark)
	s.SetLastSearch("rain")

	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, "rain", s.LastSearch())
}

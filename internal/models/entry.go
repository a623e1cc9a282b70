package models

import (
	"strings"
	"time"
)

// DateLayout is the format used when an entry is saved without a date.
const DateLayout = "2006-01-02"

// DefaultMood is stored when the user never picks a mood.
const DefaultMood = "😊"

// Moods lists the values offered by the mood selector.
var Moods = []string{"😊 Happy", "😢 Sad", "😡 Angry", "😎 Cool", "❤️ Love"}

// ValidMood reports whether mood is one of Moods or the bare DefaultMood.
func ValidMood(mood string) bool {
	if mood == DefaultMood {
		return true
	}
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Entry is one diary record. It has no identity beyond its position in the file.
type Entry struct {
	Date string
	Mood string
	Body string
}

// NewEntry builds an entry from raw form input, filling the date and mood
// defaults. The body is trimmed the same way the editor content is.
func NewEntry(date, mood, body string, now time.Time) Entry {
	date = strings.TrimSpace(date)
	if date == "" {
		date = now.Format(DateLayout)
	}
	if mood == "" {
		mood = DefaultMood
	}
	return Entry{
		Date: date,
		Mood: mood,
		Body: strings.TrimSpace(body),
	}
}

// IsEmpty reports whether the entry has nothing worth saving.
func (e Entry) IsEmpty() bool {
	return strings.TrimSpace(e.Body) == ""
}

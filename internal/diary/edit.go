package diary

import (
	"strings"
	"unicode"

	"personal-diary/internal/apperr"
)

// ReplaceFirst replaces the first occurrence of fragment in content.
//
// The fragment comes from whatever text the user selected, so an identical
// run of text earlier in the file wins over the one they were looking at.
func ReplaceFirst(content, fragment, replacement string) (string, error) {
	if fragment == "" {
		return content, apperr.ErrNoSelection
	}
	if !strings.Contains(content, fragment) {
		return content, apperr.ErrFragmentNotFound
	}
	return strings.Replace(content, fragment, replacement, 1), nil
}

// RemoveFirst deletes the first occurrence of fragment from content.
func RemoveFirst(content, fragment string) (string, error) {
	return ReplaceFirst(content, fragment, "")
}

// ReplaceBlock swaps the text of the block at index for text. The whitespace
// surrounding the old block is kept so the file layout does not drift.
func ReplaceBlock(content string, index int, text string) (string, error) {
	sp, err := spanAt(content, index)
	if err != nil {
		return content, err
	}

	old := content[sp.start:sp.end]
	lead := len(old) - len(strings.TrimLeftFunc(old, unicode.IsSpace))
	trail := len(strings.TrimRightFunc(old, unicode.IsSpace))

	return content[:sp.start] + old[:lead] + strings.TrimSpace(text) + old[trail:] + content[sp.end:], nil
}

// RemoveBlock deletes the block at index together with the separator that
// closes it.
func RemoveBlock(content string, index int) (string, error) {
	sp, err := spanAt(content, index)
	if err != nil {
		return content, err
	}

	end := sp.end
	if strings.HasPrefix(content[end:], Separator) {
		end += len(Separator)
	}
	return content[:sp.start] + content[end:], nil
}

func spanAt(content string, index int) (span, error) {
	spans := blockSpans(content)
	if index < 0 || index >= len(spans) {
		return span{}, apperr.ErrBlockOutOfRange
	}
	return spans[index], nil
}

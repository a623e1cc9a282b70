// Package diary holds the text rules of the diary file: how entries are
// written, split back into blocks, counted, searched and rewritten.
//
// The file is treated as an opaque text blob. Nothing here validates the
// header line, and a body that happens to contain Separator will be split in
// two when parsed.
package diary

import (
	"fmt"
	"strings"

	"personal-diary/internal/models"
)

// Separator terminates every entry in the diary file.
var Separator = strings.Repeat("-", 50)

// Block is the raw text between two separators, in file order.
type Block struct {
	// Index is the position among the non-blank blocks of the file.
	Index int
	Text  string
}

// Header returns the first non-empty line of the block, normally "[date] [mood]".
func (b Block) Header() string {
	for _, line := range strings.Split(b.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// Label is the short text shown in entry pickers.
func (b Block) Label() string {
	return fmt.Sprintf("#%d %s", b.Index+1, b.Header())
}

// Format renders one entry as stored on disk.
func Format(date, mood, body string) string {
	return "\n[" + date + "] [" + mood + "]\n" + body + "\n" + Separator + "\n"
}

// FormatEntry is Format for a models.Entry.
func FormatEntry(e models.Entry) string {
	return Format(e.Date, e.Mood, e.Body)
}

// Parse splits content on Separator and returns the non-blank blocks.
func Parse(content string) []Block {
	spans := blockSpans(content)
	blocks := make([]Block, 0, len(spans))
	for i, sp := range spans {
		blocks = append(blocks, Block{Index: i, Text: content[sp.start:sp.end]})
	}
	return blocks
}

type span struct {
	start, end int
}

// blockSpans returns the byte ranges of the non-blank segments of content.
func blockSpans(content string) []span {
	var spans []span
	start := 0
	for {
		i := strings.Index(content[start:], Separator)
		end := len(content)
		if i >= 0 {
			end = start + i
		}
		if strings.TrimSpace(content[start:end]) != "" {
			spans = append(spans, span{start: start, end: end})
		}
		if i < 0 {
			return spans
		}
		start = end + len(Separator)
	}
}

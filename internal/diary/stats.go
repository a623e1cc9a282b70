package diary

import (
	"fmt"
	"strings"
)

// Stats summarises a diary file.
type Stats struct {
	Entries int
	Words   int
}

// ComputeStats counts the non-blank blocks and every whitespace-separated
// token of the raw content, headers and separator lines included.
func ComputeStats(content string) Stats {
	return Stats{
		Entries: len(blockSpans(content)),
		Words:   len(strings.Fields(content)),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("📖 Entries: %d | 📝 Words: %d", s.Entries, s.Words)
}

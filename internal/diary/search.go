package diary

import (
	"strings"

	"personal-diary/internal/apperr"
)

// Result is the outcome of a successful search.
type Result struct {
	Keyword string
	// Blocks keep their file-wide Index so they can be edited directly.
	Blocks []Block
	// Text is the trimmed matches joined by separator lines, ready for display.
	Text string
}

// Search keeps the blocks containing keyword, ignoring case. An empty keyword
// yields apperr.ErrEmptyKeyword and no matches yields apperr.ErrNoResults.
func Search(content, keyword string) (Result, error) {
	if keyword == "" {
		return Result{}, apperr.ErrEmptyKeyword
	}

	needle := strings.ToLower(keyword)
	res := Result{Keyword: keyword}

	var sb strings.Builder
	for _, b := range Parse(content) {
		if !strings.Contains(strings.ToLower(b.Text), needle) {
			continue
		}
		res.Blocks = append(res.Blocks, b)
		sb.WriteString(strings.TrimSpace(b.Text))
		sb.WriteString("\n" + Separator + "\n")
	}

	if len(res.Blocks) == 0 {
		return Result{}, apperr.ErrNoResults.WithUserMessage("No entries found with '" + keyword + "'.")
	}
	res.Text = sb.String()
	return res, nil
}

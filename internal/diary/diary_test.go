package diary

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-diary/internal/apperr"
	"personal-diary/internal/models"
)

func twoEntries() string {
	return Format("2024-01-01", "😊 Happy", "Hello World") + Format("2024-01-02", "😢 Sad", "rainy day")
}

func TestFormat(t *testing.T) {
	got := Format("2024-01-01", "😊", "hello world")

	assert.Equal(t, "\n[2024-01-01] [😊]\nhello world\n"+strings.Repeat("-", 50)+"\n", got)
	assert.Len(t, Separator, 50)
	assert.Equal(t, got, FormatEntry(models.Entry{Date: "2024-01-01", Mood: "😊", Body: "hello world"}))
}

func TestParseRoundTrip(t *testing.T) {
	blocks := Parse(Format("someday", "❤️ Love", "line one\nline two"))

	require.Len(t, blocks, 1)
	b := blocks[0]
	assert.Equal(t, 0, b.Index)
	assert.Contains(t, b.Text, "someday")
	assert.Contains(t, b.Text, "❤️ Love")
	assert.Contains(t, b.Text, "line one\nline two")
	assert.Equal(t, "[someday] [❤️ Love]", b.Header())
	assert.Equal(t, "#1 [someday] [❤️ Love]", b.Label())
}

func TestParseSkipsBlankSegments(t *testing.T) {
	content := "\n\n" + twoEntries() + "   \n"

	blocks := Parse(content)

	require.Len(t, blocks, 2)
	assert.Equal(t, "[2024-01-02] [😢 Sad]", blocks[1].Header())
	assert.Equal(t, 1, blocks[1].Index)
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n"+Separator+"\n"))
}

func TestParseSeparatorInsideBodySplitsEntry(t *testing.T) {
	// Known limitation of the file format.
	content := Format("d", "m", "before\n"+Separator+"\nafter")

	assert.Len(t, Parse(content), 2)
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Stats
	}{
		{name: "empty", content: "", want: Stats{}},
		{name: "whitespace only", content: "\n \n", want: Stats{}},
		{
			name:    "single entry counts header and separator tokens",
			content: Format("2024-01-01", "😊", "hello world"),
			want:    Stats{Entries: 1, Words: 5},
		},
		{
			name:    "two entries",
			content: twoEntries(),
			want:    Stats{Entries: 2, Words: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.content))
		})
	}
}

func TestStatsString(t *testing.T) {
	assert.Equal(t, "📖 Entries: 2 | 📝 Words: 9", Stats{Entries: 2, Words: 9}.String())
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	res, err := Search(twoEntries(), "hello")
	require.NoError(t, err)

	require.Len(t, res.Blocks, 1)
	assert.Equal(t, 0, res.Blocks[0].Index)
	assert.Equal(t, "[2024-01-01] [😊 Happy]\nHello World\n"+Separator+"\n", res.Text)

	res, err = Search(twoEntries(), "DAY")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, 1, res.Blocks[0].Index)
}

func TestSearchMatchesHeaders(t *testing.T) {
	res, err := Search(twoEntries(), "2024-01")
	require.NoError(t, err)

	assert.Len(t, res.Blocks, 2)
	assert.Equal(t, 2, strings.Count(res.Text, Separator))
}

func TestSearchEmptyKeyword(t *testing.T) {
	_, err := Search(twoEntries(), "")

	assert.True(t, errors.Is(err, apperr.ErrEmptyKeyword))
	assert.Equal(t, apperr.KindEmptyInput, apperr.KindOf(err))
}

func TestSearchNoResults(t *testing.T) {
	_, err := Search(twoEntries(), "xyz")

	require.True(t, errors.Is(err, apperr.ErrNoResults))
	assert.Equal(t, "No entries found with 'xyz'.", apperr.UserMessage(err))
	assert.NotEqual(t, apperr.KindMissingFile, apperr.KindOf(err))
}

func TestReplaceFirst(t *testing.T) {
	got, err := ReplaceFirst("a b a", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "c b a", got)

	_, err = ReplaceFirst("a b a", "", "c")
	assert.True(t, errors.Is(err, apperr.ErrNoSelection))

	unchanged, err := ReplaceFirst("a b a", "zzz", "c")
	assert.True(t, errors.Is(err, apperr.ErrFragmentNotFound))
	assert.Equal(t, "a b a", unchanged)
}

func TestReplaceFirstHitsEarlierDuplicate(t *testing.T) {
	content := Format("d1", "m", "same words") + Format("d2", "m", "same words")

	got, err := ReplaceFirst(content, "same words", "changed")
	require.NoError(t, err)

	blocks := Parse(got)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "changed")
	assert.Contains(t, blocks[1].Text, "same words")
}

func TestRemoveFirstOnlyEntry(t *testing.T) {
	content := Format("2024-01-01", "😊", "hello world")

	got, err := RemoveFirst(content, content)
	require.NoError(t, err)

	assert.Empty(t, Parse(got))
	assert.Equal(t, Stats{}, ComputeStats(got))
}

func TestReplaceBlock(t *testing.T) {
	content := twoEntries()

	got, err := ReplaceBlock(content, 1, "  [2024-01-03] [😎 Cool]\nsunny now  ")
	require.NoError(t, err)

	blocks := Parse(got)
	require.Len(t, blocks, 2)
	assert.Equal(t, Parse(content)[0], blocks[0])
	assert.Equal(t, "\n\n[2024-01-03] [😎 Cool]\nsunny now\n", blocks[1].Text)
	assert.True(t, strings.HasSuffix(got, Separator+"\n"))
}

func TestRemoveBlock(t *testing.T) {
	content := twoEntries()

	first, err := RemoveBlock(content, 0)
	require.NoError(t, err)
	blocks := Parse(first)
	require.Len(t, blocks, 1)
	assert.Equal(t, "[2024-01-02] [😢 Sad]", blocks[0].Header())

	last, err := RemoveBlock(content, 1)
	require.NoError(t, err)
	assert.Equal(t, Format("2024-01-01", "😊 Happy", "Hello World"), last)

	only, err := RemoveBlock(Format("d", "m", "b"), 0)
	require.NoError(t, err)
	assert.Empty(t, Parse(only))
}

func TestBlockIndexOutOfRange(t *testing.T) {
	content := twoEntries()

	_, err := RemoveBlock(content, 2)
	assert.True(t, errors.Is(err, apperr.ErrBlockOutOfRange))

	_, err = ReplaceBlock(content, -1, "x")
	assert.True(t, errors.Is(err, apperr.ErrBlockOutOfRange))
}

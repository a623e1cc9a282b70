package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(&buf, zerolog.DebugLevel)

	l.Info("Journal", "entry saved", map[string]interface{}{"bytes": 42})
	l.Error("Storage", errors.New("disk full"), map[string]interface{}{"path": "diary.txt"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "Journal", lines[0]["component"])
	assert.Equal(t, "entry saved", lines[0]["message"])
	assert.EqualValues(t, 42, lines[0]["bytes"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "disk full", lines[1]["error"])
	assert.Equal(t, "diary.txt", lines[1]["path"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(&buf, zerolog.WarnLevel)

	l.Debug("GUI", "ignored", nil)
	l.Info("GUI", "ignored", nil)
	l.Warning("GUI", "kept", nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

package apperr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	custom := ErrNoSelection.WithUserMessage("Select an entry to edit.")

	assert.True(t, errors.Is(custom, ErrNoSelection))
	assert.False(t, errors.Is(custom, ErrNoResults))
	assert.Equal(t, "Select an entry to edit.", UserMessage(custom))
	assert.Equal(t, "Select an entry first.", UserMessage(ErrNoSelection), "the predefined error must not be mutated")
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(os.ErrPermission, KindStorage, "WRITE_FAILED", "append entry")
	wrapped := fmt.Errorf("save: %w", err)

	require.True(t, errors.Is(wrapped, os.ErrPermission))
	assert.Equal(t, KindStorage, KindOf(wrapped))
	assert.Contains(t, err.Error(), "WRITE_FAILED")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestUserMessageAndTitleFallbacks(t *testing.T) {
	plain := errors.New("boom")

	assert.Equal(t, Kind(""), KindOf(plain))
	assert.Equal(t, "boom", UserMessage(plain))
	assert.Equal(t, "Error", Title(plain, "Error"))
	assert.Equal(t, "Access Denied", Title(ErrWrongPassword, "Error"))
	assert.Equal(t, "", UserMessage(nil))

	noUser := New(KindConfig, "BAD_THEME", "unknown theme")
	assert.Equal(t, "unknown theme", UserMessage(noUser))
}

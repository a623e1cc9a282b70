package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-diary/internal/apperr"
	"personal-diary/internal/models"
)

// chdir moves into an empty directory so a stray diary.yaml cannot leak in.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "diary.txt", cfg.DiaryFile)
	assert.Equal(t, "mypassword", cfg.Password)
	assert.Equal(t, models.ThemeLight, cfg.Theme)
	assert.True(t, cfg.WatchFile)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := chdir(t)
	yamlBody := "diary_file: journal.txt\npassword: fromfile\ntheme: Dark\nlog_level: debug\ndebug:\n  timing: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yamlBody), 0o644))
	t.Setenv("DIARY_PASSWORD", "fromenv")
	t.Setenv("DIARY_WATCH", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "journal.txt", cfg.DiaryFile)
	assert.Equal(t, "fromenv", cfg.Password)
	assert.Equal(t, models.ThemeDark, cfg.Theme)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Debug.Timing)
	assert.False(t, cfg.Debug.Files)
	assert.False(t, cfg.WatchFile)
}

func TestLoadExplicitConfigMustExist(t *testing.T) {
	chdir(t)
	t.Setenv("DIARY_CONFIG", "/definitely/not/here.yaml")

	_, err := Load()

	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad bool", key: "DIARY_JSON_LOGS", val: "sometimes"},
		{name: "bad theme", key: "DIARY_THEME", val: "Sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("theme: [unclosed"), 0o644))

	_, err := Load()

	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
}

func TestValidateEmptyDiaryFile(t *testing.T) {
	cfg := Default()
	cfg.DiaryFile = "  "

	assert.Error(t, cfg.Validate())
}

func TestRedacted(t *testing.T) {
	cfg := Default()

	r := cfg.Redacted()

	assert.Equal(t, "***REDACTED***", r.Password)
	assert.Equal(t, DefaultPassword, cfg.Password)
}

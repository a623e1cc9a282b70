package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"personal-diary/internal/apperr"
	"personal-diary/internal/models"
)

const (
	DefaultDiaryFile  = "diary.txt"
	DefaultPassword   = "mypassword"
	DefaultConfigFile = "diary.yaml"
)

type Debug struct {
	Timing bool `yaml:"timing"`
	Files  bool `yaml:"files"`
}

type Config struct {
	DiaryFile string           `yaml:"diary_file"`
	Password  string           `yaml:"password"`
	Theme     models.ThemeName `yaml:"theme"`
	LogLevel  string           `yaml:"log_level"`
	JSONLogs  bool             `yaml:"json_logs"`
	WatchFile bool             `yaml:"watch_file"`
	Debug     Debug            `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		DiaryFile: DefaultDiaryFile,
		Password:  DefaultPassword,
		Theme:     models.ThemeLight,
		LogLevel:  "info",
		WatchFile: true,
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// DIARY_CONFIG (or diary.yaml in the working directory when present), then
// DIARY_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("DIARY_CONFIG")
	required := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	if err := cfg.loadFile(path, required); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return apperr.Wrap(err, apperr.KindConfig, "CONFIG_READ_FAILED", "read "+path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return apperr.Wrap(err, apperr.KindConfig, "CONFIG_PARSE_FAILED", "parse "+path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.DiaryFile = getenv("DIARY_FILE", c.DiaryFile)
	c.Password = getenv("DIARY_PASSWORD", c.Password)
	c.Theme = models.ThemeName(getenv("DIARY_THEME", string(c.Theme)))
	c.LogLevel = getenv("DIARY_LOG_LEVEL", c.LogLevel)

	var err error
	if c.JSONLogs, err = getenvBool("DIARY_JSON_LOGS", c.JSONLogs); err != nil {
		return err
	}
	if c.WatchFile, err = getenvBool("DIARY_WATCH", c.WatchFile); err != nil {
		return err
	}
	if c.Debug.Timing, err = getenvBool("DIARY_DEBUG_TIMING", c.Debug.Timing); err != nil {
		return err
	}
	if c.Debug.Files, err = getenvBool("DIARY_DEBUG_FILES", c.Debug.Files); err != nil {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DiaryFile) == "" {
		return apperr.New(apperr.KindConfig, "EMPTY_DIARY_FILE", "diary_file must not be empty")
	}
	if _, err := models.ParseTheme(string(c.Theme)); err != nil {
		return apperr.Wrap(err, apperr.KindConfig, "BAD_THEME", "invalid theme")
	}
	return nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Password != "" {
		c.Password = "***REDACTED***"
	}
	return c
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, apperr.Wrap(err, apperr.KindConfig, "BAD_BOOL", fmt.Sprintf("%s=%q", key, v))
	}
	return b, nil
}

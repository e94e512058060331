package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default location of the perch config file.
	DefaultConfigPath = "~/.config/perch/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "PERCH"

	defaultBaseURL     = "https://www.reddit.com"
	defaultHistoryPath = "~/.local/share/perch/history.log"
)

// Config holds everything perch reads at startup.
type Config struct {
	API     APIConfig           `mapstructure:"api"`
	UI      UIConfig            `mapstructure:"ui"`
	Poll    PollConfig          `mapstructure:"poll"`
	Log     LogConfig           `mapstructure:"log"`
	History HistoryConfig       `mapstructure:"history"`
	Keymap  map[string][]string `mapstructure:"keymap"`
}

// APIConfig configures the HTTP client for the content service.
type APIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Token      string        `mapstructure:"token"`
	UserAgent  string        `mapstructure:"user_agent"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  float64       `mapstructure:"rate_limit"` // requests per second
	RateBurst  int           `mapstructure:"rate_burst"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// UIConfig configures presentation defaults.
type UIConfig struct {
	Theme          string `mapstructure:"theme"`
	Ascii          bool   `mapstructure:"ascii"`
	IndentSize     int    `mapstructure:"indent_size"`
	MaxIndentLevel int    `mapstructure:"max_indent_level"`
	Flash          bool   `mapstructure:"flash"`
}

// PollConfig configures the background account/unread poller.
type PollConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// HistoryConfig configures the seen-link history file.
type HistoryConfig struct {
	Path string `mapstructure:"path"`
	Size int    `mapstructure:"size"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in any zero-valued field that has a sensible default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 10 * time.Second
	}
	if c.API.RateLimit <= 0 {
		c.API.RateLimit = 1
	}
	if c.API.RateBurst <= 0 {
		c.API.RateBurst = 5
	}
	if c.API.MaxRetries < 0 {
		c.API.MaxRetries = 0
	} else if c.API.MaxRetries == 0 {
		c.API.MaxRetries = 2
	}
	if strings.TrimSpace(c.UI.Theme) == "" {
		c.UI.Theme = "default"
	}
	if c.UI.IndentSize == 0 {
		c.UI.IndentSize = 2
	}
	if c.UI.MaxIndentLevel == 0 {
		c.UI.MaxIndentLevel = 8
	}
	if c.Poll.Interval <= 0 {
		c.Poll.Interval = time.Minute
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = "info"
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	c.History.Path = mustExpand(c.History.Path)
	if c.History.Size <= 0 {
		c.History.Size = 200
	}
	if c.Log.Path != "" {
		c.Log.Path = mustExpand(c.Log.Path)
	}
	if c.Keymap == nil {
		c.Keymap = map[string][]string{}
	}
}

// Validate checks the configuration for values perch cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url: missing host")
	}
	if c.API.Timeout < time.Second {
		return fmt.Errorf("api.timeout: %s is below the 1s minimum", c.API.Timeout)
	}
	if c.Poll.Enabled && c.Poll.Interval < time.Second {
		return fmt.Errorf("poll.interval: %s is below the 1s minimum", c.Poll.Interval)
	}
	if c.UI.IndentSize < 0 || c.UI.IndentSize > 8 {
		return fmt.Errorf("ui.indent_size: %d is outside 0-8", c.UI.IndentSize)
	}
	if c.UI.MaxIndentLevel < 1 {
		return fmt.Errorf("ui.max_indent_level: %d must be at least 1", c.UI.MaxIndentLevel)
	}
	if c.History.Size < 1 {
		return fmt.Errorf("history.size: %d must be at least 1", c.History.Size)
	}
	return nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

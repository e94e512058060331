package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from a file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a configuration loader with environment variable
// support wired up (PERCH_SECTION_KEY overrides section.key).
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// LoadConfig loads configuration from the given path. An empty path uses
// DefaultConfigPath. A missing file is not an error: defaults plus
// environment overrides apply, so perch works with no config at all.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "resolve config path", Err: err}
	}

	cfg := NewConfig()

	if _, err := os.Stat(resolved); err == nil {
		l.v.SetConfigFile(resolved)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{Path: resolved, Message: "read config file", Err: err}
		}
		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{Path: resolved, Message: "parse config file", Err: err}
		}
	} else if !os.IsNotExist(err) {
		return nil, &LoadError{Path: resolved, Message: "stat config file", Err: err}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: resolved, Message: "validate config", Err: err}
	}
	return cfg, nil
}

// applyEnvOverrides applies the explicitly supported environment
// variables. These take precedence over file contents so a token never
// has to be written to disk.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvPrefix + "_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvPrefix + "_API_USER_AGENT"); v != "" {
		cfg.API.UserAgent = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// viperDecodeHook composes the mapstructure hooks used during unmarshal.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultConfigPath)
	}
	return expandPath(path)
}

// LoadError describes a configuration loading failure.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load creates a Loader and loads configuration from the given path.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("API.BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Fatalf("API.Timeout = %s, want 10s", cfg.API.Timeout)
	}
	if cfg.UI.Theme != "default" {
		t.Fatalf("UI.Theme = %q, want %q", cfg.UI.Theme, "default")
	}
	if cfg.UI.IndentSize != 2 || cfg.UI.MaxIndentLevel != 8 {
		t.Fatalf("indent defaults = %d/%d, want 2/8", cfg.UI.IndentSize, cfg.UI.MaxIndentLevel)
	}
	if cfg.History.Size != 200 {
		t.Fatalf("History.Size = %d, want 200", cfg.History.Size)
	}
	if !strings.HasPrefix(cfg.History.Path, home) {
		t.Fatalf("History.Path = %q, want it under HOME %q", cfg.History.Path, home)
	}
}

func TestLoad_ParsesYAMLFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`
api:
  base_url: https://example.test
  token: sekrit
  timeout: 30s
  rate_limit: 2.5
ui:
  theme: molokai
  ascii: true
poll:
  enabled: true
  interval: 90s
keymap:
  move-down: ["j", "down"]
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://example.test" {
		t.Fatalf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://example.test")
	}
	if cfg.API.Token != "sekrit" {
		t.Fatalf("API.Token = %q, want %q", cfg.API.Token, "sekrit")
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("API.Timeout = %s, want 30s", cfg.API.Timeout)
	}
	if cfg.API.RateLimit != 2.5 {
		t.Fatalf("API.RateLimit = %v, want 2.5", cfg.API.RateLimit)
	}
	if cfg.UI.Theme != "molokai" || !cfg.UI.Ascii {
		t.Fatalf("UI = %+v, want molokai/ascii", cfg.UI)
	}
	if cfg.Poll.Interval != 90*time.Second {
		t.Fatalf("Poll.Interval = %s, want 90s", cfg.Poll.Interval)
	}
	keys := cfg.Keymap["move-down"]
	if len(keys) != 2 || keys[0] != "j" || keys[1] != "down" {
		t.Fatalf("Keymap[move-down] = %v, want [j down]", keys)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PERCH_API_TOKEN", "env-token")
	t.Setenv("PERCH_UI_THEME", "monochrome")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  token: file-token\nui:\n  theme: molokai\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.Token != "env-token" {
		t.Fatalf("API.Token = %q, want env override", cfg.API.Token)
	}
	if cfg.UI.Theme != "monochrome" {
		t.Fatalf("UI.Theme = %q, want env override", cfg.UI.Theme)
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api: ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load error = %T, want *LoadError", err)
	}
}

func TestLoad_ValidationRejectsBadBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: ftp://example.test\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want validation error")
	}
	if !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("Load error = %q, want it to mention the scheme", err.Error())
	}
}

func TestValidate_RejectsShortPollInterval(t *testing.T) {
	cfg := NewConfig()
	cfg.Poll.Enabled = true
	cfg.Poll.Interval = 200 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate returned nil error, want poll interval error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

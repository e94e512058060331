// Package log configures the process-wide zerolog logger.
//
// perch owns the terminal while it runs, so nothing may write to stdout
// or stderr. All logging goes to a file selected at startup, or is
// discarded when no file is configured.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string // log level ("debug", "info", ...), defaults to info
	Path    string // log file path; empty discards all output
	Service string // service name attached to every entry
}

var (
	mu   sync.Mutex
	base zerolog.Logger
	done bool
)

// Configure initialises the global logger. The first call wins;
// subsequent calls are no-ops so that tests and library consumers
// cannot re-route an active logger mid-flight.
func Configure(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	if done {
		return nil
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
		level = parsed
	} else if env := os.Getenv("PERCH_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	var writer io.Writer = io.Discard
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		writer = f
	}

	service := cfg.Service
	if service == "" {
		service = "perch"
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	base = zerolog.New(writer).With().
		Timestamp().
		Str("service", service).
		Logger()
	done = true
	return nil
}

func logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !done {
		base = zerolog.New(io.Discard)
		done = true
	}
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}

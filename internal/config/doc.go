// Package config handles loading and validating perch configuration.
//
// # Overview
//
// Configuration comes from an optional YAML file plus environment
// variable overrides. perch is usable with no configuration at all:
// every field has a default, and the defaults point the client at the
// public, unauthenticated API endpoint.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/perch/config.yaml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. Environment variables override file contents in either case
//
// # File Format
//
// Example config.yaml:
//
//	api:
//	  base_url: https://oauth.reddit.com
//	  token: "..."
//	  timeout: 10s
//	  rate_limit: 1
//	ui:
//	  theme: molokai
//	  ascii: false
//	  indent_size: 2
//	poll:
//	  enabled: true
//	  interval: 60s
//	log:
//	  path: ~/.local/share/perch/perch.log
//	  level: debug
//	keymap:
//	  move-down: ["j", "down"]
//	  vote-up: ["a"]
//
// The keymap table maps command names to key lists; any command left out
// keeps its built-in binding. Durations use Go syntax ("90s", "2m").
//
// # Environment Overrides
//
// Any key can be overridden as PERCH_SECTION_KEY through viper's
// automatic env support. A handful of sensitive or frequently toggled
// values are also read explicitly: PERCH_API_TOKEN, PERCH_API_BASE_URL,
// PERCH_API_USER_AGENT, PERCH_LOG_LEVEL, PERCH_LOG_PATH, PERCH_UI_THEME.
// Supplying the token via environment keeps it out of config files.
//
// # Error Handling
//
// Loading returns *LoadError (with Unwrap) for unreadable or unparsable
// files and for validation failures. A missing file is NOT an error.
//
// # Path Expansion
//
// Tilde paths expand to the home directory; relative paths become
// absolute. This applies to the config file location and to the log and
// history paths inside it.
package config

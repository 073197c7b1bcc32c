// Package config loads and saves the gstate dashboard configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gstate/config.toml (default)
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Theme: Nightfox
//   - Tick interval: 1s
//   - Log directory: ~/.local/state/gstate
//   - Initial counters: counter_a = 10, counter_b = 0
//
// # TOML Format
//
//	theme = "Kanagawa"
//	tick_seconds = 1
//	log_dir = "~/.local/state/gstate"
//
//	[initial]
//	counter_a = 10
//	counter_b = 0
//
// Initial counters are pointers in the file layout so an explicit zero
// overrides the default.
//
// # Saving
//
// Save writes the whole file back. The dashboard calls it when the theme is
// cycled so the choice survives restarts. Paths are written expanded.
//
// # Error Handling
//
//   - Missing file: defaults, no error
//   - Unreadable file: "open config" / "read config" errors
//   - Malformed TOML: "parse config" error
//
// Errors are wrapped with %w so callers may inspect the cause.
package config

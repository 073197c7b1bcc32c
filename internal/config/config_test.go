package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.TickEvery != defaultTick {
		t.Fatalf("TickEvery = %v, want %v", cfg.TickEvery, defaultTick)
	}
	if cfg.CounterA != defaultCounterA || cfg.CounterB != defaultCounterB {
		t.Fatalf("counters = %d/%d, want %d/%d", cfg.CounterA, cfg.CounterB, defaultCounterA, defaultCounterB)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "  Kanagawa  "
tick_seconds = 3
log_dir = "  ~/.gstate/logs  "

[initial]
counter_a = 0
counter_b = 7
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Kanagawa")
	}
	if cfg.TickEvery != 3*time.Second {
		t.Fatalf("TickEvery = %v, want 3s", cfg.TickEvery)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.CounterA != 0 {
		t.Fatalf("CounterA = %d, want explicit 0 to override default", cfg.CounterA)
	}
	if cfg.CounterB != 7 {
		t.Fatalf("CounterB = %d, want 7", cfg.CounterB)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "   "
tick_seconds = 0
log_dir = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.TickEvery != defaultTick {
		t.Fatalf("TickEvery = %v, want %v", cfg.TickEvery, defaultTick)
	}
	if cfg.CounterA != defaultCounterA {
		t.Fatalf("CounterA = %d, want %d", cfg.CounterA, defaultCounterA)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestSave_RoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Theme = "Slate"
	want.TickEvery = 5 * time.Second
	want.CounterA = 42

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Load after Save = %#v, want %#v", got, want)
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

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath("gstate")
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/gstate.INFO")) {
		t.Fatalf("LogPath = %q, want it to end with /gstate.INFO", got)
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the dashboard settings and the initial shared state.
type Config struct {
	Theme     string
	TickEvery time.Duration
	LogDir    string
	CounterA  int
	CounterB  int
}

const (
	defaultConfigPath = "~/.config/gstate/config.toml"
	defaultLogDir     = "~/.local/state/gstate"
	defaultTheme      = "Nightfox"
	defaultTick       = time.Second
	defaultCounterA   = 10
	defaultCounterB   = 0
)

// fileConfig is the on-disk TOML layout.
type fileConfig struct {
	Theme       string `toml:"theme"`
	TickSeconds int    `toml:"tick_seconds"`
	LogDir      string `toml:"log_dir"`
	Initial     struct {
		CounterA *int `toml:"counter_a"`
		CounterB *int `toml:"counter_b"`
	} `toml:"initial"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:     defaultTheme,
		TickEvery: defaultTick,
		LogDir:    mustExpand(defaultLogDir),
		CounterA:  defaultCounterA,
		CounterB:  defaultCounterB,
	}
}

// DefaultPath returns the default config file path, unexpanded.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.TickSeconds > 0 {
		cfg.TickEvery = time.Duration(raw.TickSeconds) * time.Second
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if raw.Initial.CounterA != nil {
		cfg.CounterA = *raw.Initial.CounterA
	}
	if raw.Initial.CounterB != nil {
		cfg.CounterB = *raw.Initial.CounterB
	}

	return cfg, nil
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var raw fileConfig
	raw.Theme = cfg.Theme
	raw.TickSeconds = int(cfg.TickEvery / time.Second)
	raw.LogDir = cfg.LogDir
	raw.Initial.CounterA = &cfg.CounterA
	raw.Initial.CounterB = &cfg.CounterB

	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LogPath returns the glog INFO symlink inside the log directory. glog
// mirrors every severity into the INFO file.
func (c Config) LogPath(program string) string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, program+".INFO")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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

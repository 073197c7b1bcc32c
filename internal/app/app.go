package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/five82/gstate/internal/config"
	"github.com/five82/gstate/internal/state"
	"github.com/five82/gstate/internal/ui"
)

// Options configure the gstate application.
type Options struct {
	ConfigPath string        // empty uses default ~/.config/gstate/config.toml
	TickEvery  time.Duration // zero uses the configured interval
	LogDir     string        // empty uses the configured directory
}

// Run boots the gstate dashboard until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.TickEvery > 0 {
		cfg.TickEvery = opts.TickEvery
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}

	if err := setupLogging(cfg.LogDir); err != nil {
		return err
	}
	defer glog.Flush()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	store := state.New(ui.InitialState(cfg))
	glog.Infof("gstate starting: theme=%s tick=%s counterA=%d counterB=%d",
		cfg.Theme, cfg.TickEvery, cfg.CounterA, cfg.CounterB)

	model, err := ui.New(ui.Options{
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
		LogPath:    cfg.LogPath(filepath.Base(os.Args[0])),
	})
	if err != nil {
		return fmt.Errorf("init ui: %w", err)
	}

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	StartTicker(ctx, p.Send, cfg.TickEvery)

	final, err := ui.Run(p)
	// A killed program may return no model; the panes it built still hold
	// subscriptions.
	if final.Store() == nil {
		final = model
	}
	final.Close()
	glog.Infof("gstate stopped with %d subscribers left", store.Len())

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging points glog at dir. glog exits the process if it cannot
// create its files, so the directory is made first.
func setupLogging(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	for name, value := range map[string]string{
		"log_dir":         dir,
		"logtostderr":     "false",
		"alsologtostderr": "false",
	} {
		if err := flag.Set(name, value); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
	}
	return nil
}

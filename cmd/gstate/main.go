package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/gstate/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gstate: %v\n", err)
		return 1
	}
	return 0
}

// newRootCommand builds the gstate command. runApp is called with the parsed
// options.
func newRootCommand(runApp func(context.Context, app.Options) error) *cobra.Command {
	var (
		opts        app.Options
		tickSeconds int
	)

	cmd := &cobra.Command{
		Use:           "gstate",
		Short:         "gstate - shared state dashboard",
		Long:          "A terminal dashboard whose panes subscribe to one shared state store.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tickSeconds < 0 {
				return fmt.Errorf("invalid tick %d: must not be negative", tickSeconds)
			}
			opts.TickEvery = time.Duration(tickSeconds) * time.Second
			return runApp(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/gstate/config.toml)")
	cmd.Flags().IntVar(&tickSeconds, "tick", 0, "tick interval in seconds (optional, defaults to config)")
	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "", "directory for glog files (optional, defaults to config)")

	return cmd
}

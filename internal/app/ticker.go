package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gstate/internal/ui"
)

const defaultTickInterval = time.Second

// StartTicker launches a background goroutine that sends a ui.TickMsg through
// send at a fixed cadence until ctx is done. It returns immediately.
func StartTicker(ctx context.Context, send func(tea.Msg), interval time.Duration) {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				send(ui.TickMsg(now))
			}
		}
	}()
}

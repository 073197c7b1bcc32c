package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gstate/internal/ui"
)

func TestStartTicker_SendsTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan tea.Msg, 16)
	StartTicker(ctx, func(msg tea.Msg) {
		select {
		case msgs <- msg:
		default:
		}
	}, 5*time.Millisecond)

	select {
	case msg := <-msgs:
		assert.IsType(t, ui.TickMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick received")
	}
}

func TestStartTicker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var sent atomic.Int64
	StartTicker(ctx, func(tea.Msg) { sent.Add(1) }, 5*time.Millisecond)

	require.Eventually(t, func() bool { return sent.Load() > 0 }, 2*time.Second, time.Millisecond)
	cancel()

	// Allow an in-flight send to land before sampling.
	time.Sleep(20 * time.Millisecond)
	after := sent.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, sent.Load())
}

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gstate/internal/app"
)

func TestRootCommand_Flags(t *testing.T) {
	var got app.Options
	cmd := newRootCommand(func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--config", "/tmp/g.toml", "--tick", "3", "--log-dir", "/tmp/logs"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, app.Options{ConfigPath: "/tmp/g.toml", TickEvery: 3 * time.Second, LogDir: "/tmp/logs"}, got)
}

func TestRootCommand_Defaults(t *testing.T) {
	var got app.Options
	cmd := newRootCommand(func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, app.Options{}, got)
}

func TestRootCommand_RejectsNegativeTick(t *testing.T) {
	called := false
	cmd := newRootCommand(func(context.Context, app.Options) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--tick=-1"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
	assert.False(t, called)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand(func(context.Context, app.Options) error { return nil })
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

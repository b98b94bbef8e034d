// SPDX-License-Identifier: MIT
package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/focusmap/internal/config"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

func pruneCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "prune"}
	cmd.Flags().Duration("max-idle", 0, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestPruneWindowFromConfig(t *testing.T) {
	setupConfig(t)

	d, err := pruneWindow(pruneCmd(t))
	require.NoError(t, err)
	assert.Equal(t, 720*time.Hour, d)

	d, err = pruneWindow(pruneCmd(t, "--max-idle", "2h"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, d)
}

func TestPruneWindowRefusesNonPositive(t *testing.T) {
	setupConfig(t)

	_, err := pruneWindow(pruneCmd(t, "--max-idle", "0s"))
	assert.ErrorIs(t, err, sessions.ErrInvalidMaxIdle)

	require.NoError(t, config.Set("session.max_idle", "0"))
	_, err = pruneWindow(pruneCmd(t))
	assert.ErrorIs(t, err, sessions.ErrInvalidMaxIdle)
}

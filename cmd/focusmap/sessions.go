// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/focusmap/internal/config"
	"github.com/thatcatcamp/focusmap/internal/db"
	"github.com/thatcatcamp/focusmap/internal/sessions"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage stored map sessions",
}

// mustStore opens the database and the session store, exiting on failure
func mustStore() *sessions.Store {
	if err := initSystemDB(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := sessions.NewStore(db.GetDB(), newFactory(cat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

var sessionsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show how many sessions are stored",
	Run: func(cmd *cobra.Command, args []string) {
		n, err := mustStore().Count()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(n)
	},
}

var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete sessions idle for longer than session.max_idle",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		maxIdle, err := pruneWindow(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		n, err := mustStore().Prune(maxIdle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pruned %d sessions idle for more than %s\n", n, maxIdle)
	},
}

// pruneWindow returns --max-idle, falling back to session.max_idle. A
// window that is not positive would delete every session and is refused.
func pruneWindow(cmd *cobra.Command) (time.Duration, error) {
	maxIdle, err := cmd.Flags().GetDuration("max-idle")
	if err != nil {
		return 0, err
	}
	if !cmd.Flags().Changed("max-idle") {
		maxIdle = config.GetDuration("session.max_idle")
	}
	if maxIdle <= 0 {
		return 0, fmt.Errorf("refusing to prune with max idle %s: %w", maxIdle, sessions.ErrInvalidMaxIdle)
	}
	return maxIdle, nil
}

func init() {
	sessionsPruneCmd.Flags().Duration("max-idle", 0, "Override session.max_idle")
	sessionsCmd.AddCommand(sessionsCountCmd)
	sessionsCmd.AddCommand(sessionsPruneCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "focusmap",
	Short: "focusmap - precipitation map with department and municipality filters",
	Long: `focusmap serves a Leaflet map of a municipal GeoJSON layer with two
cascading dropdowns. Picking a municipality zooms to it, dims the rest of
the map and outlines it in cyan. Each browser keeps its own selection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("failed to load .env: %v", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

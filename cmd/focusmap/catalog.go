// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/focusmap/internal/catalog"
	"github.com/thatcatcamp/focusmap/internal/mapview"
	"github.com/thatcatcamp/focusmap/internal/search"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the loaded dataset",
	Long:  "List the departments and municipalities indexed from the configured dataset",
}

// mustCatalog loads config and the catalog, exiting on failure
func mustCatalog() *catalog.Catalog {
	if err := initConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_, cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cat
}

var catalogDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List departments",
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		for _, dept := range cat.Departments() {
			munis, _ := cat.Municipalities(dept)
			fmt.Printf("%-30s %d\n", dept, len(munis))
		}
	},
}

var catalogMunicipalitiesCmd = &cobra.Command{
	Use:   "municipalities <department>",
	Short: "List the municipalities of a department",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		munis, ok := cat.Municipalities(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: department %q not found\n", args[0])
			os.Exit(1)
		}
		for _, m := range munis {
			fmt.Println(m)
		}
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <municipality>",
	Short: "Show a municipality's bounds",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		if _, ok := cat.Feature(args[0]); !ok {
			fmt.Fprintf(os.Stderr, "Error: municipality %q not found\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("Municipality: %s\n", args[0])
		b, ok := cat.Bounds(args[0])
		if !ok {
			fmt.Println("Bounds:       (no geometry)")
			return
		}
		lb := mapview.LatLngBounds(b)
		fmt.Printf("Bounds:       [[%.6f, %.6f], [%.6f, %.6f]]\n", lb[0][0], lb[0][1], lb[1][0], lb[1][1])
	},
}

var catalogCollisionsCmd = &cobra.Command{
	Use:   "collisions",
	Short: "List municipality names shared by several features",
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		collisions := cat.Collisions()
		if len(collisions) == 0 {
			fmt.Println("No collisions.")
			return
		}

		fmt.Printf("%-30s %-25s %-25s %s\n", "Municipality", "Replaced (department)", "Kept (department)", "Feature")
		for _, col := range collisions {
			fmt.Printf("%-30s %-25s %-25s %d\n", col.Municipality, col.PreviousDepartment, col.Department, col.Index)
		}
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find municipalities by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		results := search.NewIndex(mustCatalog()).Search(args[0], limit)
		if len(results) == 0 {
			fmt.Println("No matches.")
			return
		}
		for _, r := range results {
			fmt.Printf("%-30s %s\n", r.Municipality, r.Department)
		}
	},
}

func init() {
	catalogSearchCmd.Flags().Int("limit", search.DefaultLimit, "Maximum number of results")
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogDepartmentsCmd)
	catalogCmd.AddCommand(catalogMunicipalitiesCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogCollisionsCmd)
	rootCmd.AddCommand(catalogCmd)
}

// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/focusmap/internal/config"
	"github.com/thatcatcamp/focusmap/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Show the SSL/TLS certificates held for the map's hostnames",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: focusmap config set server.tls_enabled true")
			return
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
			os.Exit(1)
		}

		statuses := tlsCfg.CertificateStatus()
		if len(statuses) == 0 {
			fmt.Println("No certificates found. Certificates are provisioned when the server starts.")
			fmt.Println("\nConfigured domains:")
			for _, domain := range tlsCfg.Domains() {
				fmt.Printf("  - %s (not yet provisioned)\n", domain)
			}
			return
		}

		fmt.Printf("%-30s %-20s %-15s %s\n", "Domain", "Issuer", "Expires", "Days Left")
		fmt.Println("-----------------------------------------------------------------------------------")
		for _, status := range statuses {
			fmt.Printf("%-30s %-20s %-15s %d\n",
				status.Domain,
				status.Issuer,
				status.NotAfter.Format("2006-01-02"),
				status.DaysUntilExpiry,
			)
		}
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}

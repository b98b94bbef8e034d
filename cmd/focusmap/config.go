// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/focusmap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage focusmap configuration",
	Long: `View and modify focusmap configuration values.

List keys such as security.frame_ancestors or server.trusted_proxies take
a comma-separated value:

  focusmap config set security.frame_ancestors https://*.wixsite.com,https://editor.wix.com`,
}

// loadConfig is the PreRunE of every config subcommand
func loadConfig(cmd *cobra.Command, args []string) error {
	return initConfig()
}

var configGetCmd = &cobra.Command{
	Use:     "get <key>",
	Short:   "Get a configuration value",
	Args:    cobra.ExactArgs(1),
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !config.Known(key) {
			return fmt.Errorf("unknown config key %q", key)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatValue(key))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Set a configuration value",
	Args:    cobra.ExactArgs(2),
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		force, _ := cmd.Flags().GetBool("force")
		if !config.Known(key) && !force {
			return fmt.Errorf("unknown config key %q (use --force to add it)", key)
		}

		value := parseValue(key, args[1])
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, formatValue(key))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:     "list [prefix]",
	Short:   "List configuration values, optionally only those under prefix",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = strings.TrimSuffix(args[0], ".") + "."
		}
		for _, key := range flatKeys(config.GetAll(), "") {
			if prefix == "" || strings.HasPrefix(key, prefix) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, formatValue(key))
			}
		}
		return nil
	},
}

// parseValue splits comma-separated input for list keys
func parseValue(key, raw string) interface{} {
	if !config.IsList(key) {
		return raw
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func formatValue(key string) string {
	if config.IsList(key) {
		return strings.Join(config.GetStringSlice(key), ",")
	}
	return config.GetString(key)
}

// flatKeys returns the dotted leaf keys of settings, sorted
func flatKeys(settings map[string]interface{}, parent string) []string {
	var keys []string
	for k, val := range settings {
		key := k
		if parent != "" {
			key = parent + "." + k
		}
		if nested, ok := val.(map[string]interface{}); ok {
			keys = append(keys, flatKeys(nested, key)...)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	configSetCmd.Flags().Bool("force", false, "Set a key focusmap does not know about")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig loads FOCUSMAP_CONFIG, or ~/.focusmap/config.yaml
func initConfig() error {
	configPath := os.Getenv("FOCUSMAP_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".focusmap", "config.yaml")
	}

	return config.InitConfig(configPath)
}

// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

var envKeyReplacer = strings.NewReplacer(".", "_")

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// FOCUSMAP_SERVER_HTTP_PORT overrides server.http_port, etc.
	v.SetEnvPrefix("FOCUSMAP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.https_port", "443")
	v.SetDefault("server.base_domain", "localhost")
	v.SetDefault("server.title", "Mapa de Precipitación")
	v.SetDefault("server.behind_proxy", false)
	v.SetDefault("server.trusted_proxies", []string{})

	// Dataset defaults
	v.SetDefault("dataset.path", "data/Precipitacin_13.js")
	v.SetDefault("dataset.department_property", "Departamen")
	v.SetDefault("dataset.municipality_property", "Municipio")

	// Map defaults
	v.SetDefault("map.default_base", "osm")
	v.SetDefault("map.fit_padding", 50)
	v.SetDefault("map.max_zoom", 14)
	v.SetDefault("map.osm.name", "OpenStreetMap")
	v.SetDefault("map.osm.url", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.osm.attribution", "&copy; OpenStreetMap contributors")
	v.SetDefault("map.osm.max_zoom", 19)
	v.SetDefault("map.sat.name", "Google Satellite")
	v.SetDefault("map.sat.url", "https://mt1.google.com/vt/lyrs=s&x={x}&y={y}&z={z}")
	v.SetDefault("map.sat.attribution", "Map data &copy; Google")
	v.SetDefault("map.sat.max_zoom", 20)
	v.SetDefault("map.focus.dimmer_color", "#000")
	v.SetDefault("map.focus.dimmer_opacity", 0.6)
	v.SetDefault("map.focus.highlight_color", "#00ffff")
	v.SetDefault("map.focus.highlight_weight", 4)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "focusmap.db")

	// Session defaults
	v.SetDefault("session.secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
	v.SetDefault("session.expiry_hours", 24*30)
	v.SetDefault("session.prune_interval", "6h")
	v.SetDefault("session.max_idle", "720h")

	// Security defaults
	v.SetDefault("security.blocked_ips", []string{})
	v.SetDefault("security.rate_limit", 60)
	v.SetDefault("security.rate_interval", "1m")
	v.SetDefault("security.frame_ancestors", []string{})

	// TLS defaults
	v.SetDefault("server.tls_enabled", false)
	v.SetDefault("tls.email", "")
	v.SetDefault("tls.cert_dir", "certs")
	v.SetDefault("tls.staging", false)
	v.SetDefault("tls.domains", []string{})
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a list of strings
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Known reports whether key has a default or a value in the config file
func Known(key string) bool {
	if v == nil {
		return false
	}
	return v.IsSet(key)
}

// IsList reports whether key holds a list, such as security.blocked_ips
func IsList(key string) bool {
	if v == nil {
		return false
	}
	switch v.Get(key).(type) {
	case []string, []interface{}:
		return true
	}
	return false
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}

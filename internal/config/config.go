// Package config provides configuration management.
// Configuration comes from defaults, then an optional JSON file, then
// FREELANCE_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"freelance-rate/internal/logging"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv
const EnvPrefix = "FREELANCE_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog locates the pricing catalog
	Catalog CatalogConfig `json:"catalog"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Share contains deep-link configuration
	Share ShareConfig `json:"share"`

	// Validation contains input validation settings
	Validation ValidationConfig `json:"validation"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig locates the pricing catalog
type CatalogConfig struct {
	// Path is a .hcl, .yaml or .json catalog; empty uses the built-in one
	Path string `json:"path" env:"CATALOG"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"ADDR"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" env:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// ShutdownTimeout returns the graceful shutdown bound
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" env:"OUTPUT_FORMAT"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color" env:"NO_COLOR"`
}

// ShareConfig configures the message deep link
type ShareConfig struct {
	// Phone is the recipient in international format
	Phone string `json:"phone" env:"SHARE_PHONE"`

	// BaseURL is the click-to-chat endpoint
	BaseURL string `json:"base_url" env:"SHARE_BASE_URL"`
}

// ValidationConfig contains input validation settings
type ValidationConfig struct {
	// StrictReferral rejects recognized codes without a discount or custom
	// hours instead of accepting them silently
	StrictReferral bool `json:"strict_referral" env:"STRICT_REFERRAL"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 5,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Share: ShareConfig{
			Phone:   "+917015954990",
			BaseURL: "https://wa.me/",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.freelance-rate.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".freelance-rate.json")
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return config, nil
}

// ApplyEnv overrides c with FREELANCE_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

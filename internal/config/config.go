package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fiscboard configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Metrics MetricsConfig `toml:"metrics"`
	Export  ExportConfig  `toml:"export"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Unit           string `toml:"unit"`
	Theme          string `toml:"theme"`
	ShowComparison bool   `toml:"show_comparison"`
}

// MetricsConfig holds computation settings.
type MetricsConfig struct {
	GrowthPolicy string `toml:"growth_policy"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Unit:           "millions",
			Theme:          "flexoki-dark",
			ShowComparison: true,
		},
		Metrics: MetricsConfig{
			GrowthPolicy: "absolute",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fiscboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fiscboard")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

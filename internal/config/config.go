// Package config loads and saves outlay configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all outlay configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Budget     BudgetConfig       `toml:"budget"`
	Goals      map[string]float64 `toml:"goals,omitempty"`
	Appearance AppearanceConfig   `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	LedgerFile string `toml:"ledger_file,omitempty"`
}

// BudgetConfig holds budget tracking settings.
type BudgetConfig struct {
	Monthly float64 `toml:"monthly"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Budget: BudgetConfig{Monthly: 1000},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outlay")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "outlay")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultLedgerPath returns the XDG-compliant default ledger file location.
func DefaultLedgerPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "outlay", "expenses.csv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "outlay", "expenses.csv")
}

// LedgerPath resolves the ledger file path: config override or XDG default.
func LedgerPath(cfg Config) string {
	if cfg.General.LedgerFile != "" {
		return cfg.General.LedgerFile
	}
	return DefaultLedgerPath()
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
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
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

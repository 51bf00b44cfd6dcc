// Package config loads and saves spendlog's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/spendlog/internal/atomicfile"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "SPENDLOG_DATA_DIR"
	EnvCurrency = "SPENDLOG_CURRENCY"
	EnvLogLevel = "SPENDLOG_LOG_LEVEL"
)

// Config holds all spendlog configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
}

// GeneralConfig holds storage and logging settings.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir,omitempty"`
	ExpenseFile string `toml:"expense_file"`
	BudgetFile  string `toml:"budget_file"`
	LogLevel    string `toml:"log_level"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Currency    string `toml:"currency"`
	NewestFirst bool   `toml:"newest_first"`
	Theme       string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			ExpenseFile: "expenses.csv",
			BudgetFile:  "budget.txt",
			LogLevel:    "info",
		},
		Display: DisplayConfig{
			Currency:    "₹",
			NewestFirst: true,
			Theme:       "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendlog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendlog")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendlog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spendlog")
}

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist, then applies environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config file at path over the defaults without applying
// environment overrides. It is what gets edited and saved back.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// ApplyEnv overwrites cfg fields with any SPENDLOG_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Display.Currency = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.General.LogLevel = v
	}
}

// SaveTo writes cfg to path, replacing any existing file atomically.
func SaveTo(cfg Config, path string) error {
	return atomicfile.Write(path, 0o600, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(cfg)
	})
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolvedDataDir returns the configured data directory or the default.
func (c Config) ResolvedDataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// ExpensePath returns the record store location.
func (c Config) ExpensePath() string {
	return c.resolve(c.General.ExpenseFile, "expenses.csv")
}

// BudgetPath returns the budget store location.
func (c Config) BudgetPath() string {
	return c.resolve(c.General.BudgetFile, "budget.txt")
}

func (c Config) resolve(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.ResolvedDataDir(), name)
}

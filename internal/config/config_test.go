package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoadFromMissingReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[general]
data_dir = "/srv/books"
expense_file = "spend.csv"

[display]
currency = "$"
newest_first = false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.ExpensePath() != filepath.Join("/srv/books", "spend.csv") {
		t.Errorf("ExpensePath() = %s", cfg.ExpensePath())
	}
	if cfg.BudgetPath() != filepath.Join("/srv/books", "budget.txt") {
		t.Errorf("BudgetPath() = %s", cfg.BudgetPath())
	}
	if cfg.Display.Currency != "$" || cfg.Display.NewestFirst {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.General.LogLevel)
	}
}

func TestLoadFromBadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted malformed TOML")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\ncurrency = \"$\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCurrency, "€")
	t.Setenv(EnvDataDir, "/tmp/ledger")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Display.Currency != "€" {
		t.Errorf("Currency = %q, want €", cfg.Display.Currency)
	}
	if cfg.ResolvedDataDir() != "/tmp/ledger" {
		t.Errorf("ResolvedDataDir() = %q", cfg.ResolvedDataDir())
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.General.LogLevel)
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[display]\ncurrency = \"$\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCurrency, "€")
	t.Setenv(EnvDataDir, "/tmp/ledger")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Display.Currency != "$" {
		t.Errorf("Currency = %q, want $ from the file", cfg.Display.Currency)
	}
	if cfg.General.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", cfg.General.DataDir)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.DataDir = "/data"
	cfg.Display.Theme = "catppuccin-mocha"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists() = false after SaveTo")
	}
	back, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if back != cfg {
		t.Fatalf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestDefaultDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DefaultDataDir(); got != filepath.Join("/xdg/data", "spendlog") {
		t.Fatalf("DefaultDataDir() = %s", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Path(); got != filepath.Join("/xdg/config", "spendlog", "config.toml") {
		t.Fatalf("Path() = %s", got)
	}
}

func TestAbsoluteFileNameWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/data"
	cfg.General.BudgetFile = "/elsewhere/budget.txt"
	if cfg.BudgetPath() != "/elsewhere/budget.txt" {
		t.Fatalf("BudgetPath() = %s", cfg.BudgetPath())
	}
}

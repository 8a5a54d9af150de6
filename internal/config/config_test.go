package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Budget.Monthly != 1000 {
		t.Errorf("default monthly budget = %v, want 1000", cfg.Budget.Monthly)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Budget.Monthly = 2500
	cfg.General.LedgerFile = "/tmp/mine.csv"
	cfg.Goals = map[string]float64{"vacation": 500, "course": 300}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Budget.Monthly != 2500 {
		t.Errorf("Monthly = %v, want 2500", loaded.Budget.Monthly)
	}
	if loaded.General.LedgerFile != "/tmp/mine.csv" {
		t.Errorf("LedgerFile = %q", loaded.General.LedgerFile)
	}
	if loaded.Goals["vacation"] != 500 || loaded.Goals["course"] != 300 {
		t.Errorf("Goals = %+v", loaded.Goals)
	}
}

func TestLedgerPath(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := DefaultConfig()
	want := filepath.Join(dataDir, "outlay", "expenses.csv")
	if got := LedgerPath(cfg); got != want {
		t.Errorf("LedgerPath = %q, want %q", got, want)
	}

	cfg.General.LedgerFile = "/custom/ledger.csv"
	if got := LedgerPath(cfg); got != "/custom/ledger.csv" {
		t.Errorf("LedgerPath override = %q", got)
	}
}

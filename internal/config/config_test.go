package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Unit != "millions" {
		t.Errorf("default unit = %q, want millions", cfg.Display.Unit)
	}
	if cfg.Display.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q, want flexoki-dark", cfg.Display.Theme)
	}
	if !cfg.Display.ShowComparison {
		t.Error("comparison should default on")
	}
	if cfg.Metrics.GrowthPolicy != "absolute" {
		t.Errorf("default growth policy = %q, want absolute", cfg.Metrics.GrowthPolicy)
	}
	if Exists() {
		t.Error("Exists reported a config that was never saved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Display.Unit = "billions"
	cfg.Display.ShowComparison = false
	cfg.Metrics.GrowthPolicy = "signed"
	cfg.Export.DBPath = "/tmp/fiscboard.db"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "fiscboard", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("display = not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

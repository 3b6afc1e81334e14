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
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want %q", cfg.Appearance.Theme, "flexoki-dark")
	}
	if cfg.General.PlanPath != "" {
		t.Fatalf("default plan path = %q, want empty", cfg.General.PlanPath)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.PlanPath = "/tmp/myplan.toml"
	cfg.General.DefaultScenario = "aggressive"
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("loaded config = %+v, want %+v", got, cfg)
	}
}

func TestConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "finplan", "config.toml")
	if got := ConfigPath(); got != want {
		t.Fatalf("ConfigPath = %q, want %q", got, want)
	}
}

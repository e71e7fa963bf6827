package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/xterm-go/assets"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if string(written) != string(assets.DefaultConfigYAML) {
		t.Fatal("written config differs from embedded defaults")
	}

	if cfg.History.Size != 5 || cfg.Autocorrect.Threshold != 80 || !cfg.Autocorrect.Enabled {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Icons["default"] == "" || cfg.Icons["home"] == "" {
		t.Fatalf("expected default icons, got %v", cfg.Icons)
	}
	if want := filepath.Join(home, ".xterm", "logs", "xterm.log"); cfg.Logging.File != want {
		t.Fatalf("log file = %q, want %q", cfg.Logging.File, want)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("history:\n  size: 10\nicons:\n  projects: \"🚀\"\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.History.Size != 10 {
		t.Fatalf("history size = %d, want 10", cfg.History.Size)
	}
	if !cfg.Autocorrect.Enabled || cfg.Autocorrect.Threshold != 80 {
		t.Fatalf("autocorrect defaults lost: %+v", cfg.Autocorrect)
	}
	if cfg.Icons["projects"] != "🚀" || cfg.Icons["default"] == "" {
		t.Fatalf("icons not merged: %v", cfg.Icons)
	}
	if cfg.Execution.Shell != "auto" {
		t.Fatalf("shell = %q, want auto", cfg.Execution.Shell)
	}
}

func TestLoadHydratesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("history:\n  size: 0\nexecution:\n  shell: \"\"\nlogging:\n  level: \"\"\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.History.Size != 5 || cfg.Execution.Shell != "auto" || cfg.Logging.Level != "info" {
		t.Fatalf("zero values not hydrated: %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathHonoursEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("XTERM_CONFIG", custom)
	if got := NewFileLoader("").Path(); got != custom {
		t.Fatalf("Path() = %q, want %q", got, custom)
	}
}

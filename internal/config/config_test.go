package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/inputhook/internal/config"
)

// TestLoad_Defaults verifies the built-in configuration when no file and no
// environment are present.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8077" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if !cfg.TapEnabled || cfg.LogEvents || cfg.SuppressKeyboard || cfg.SuppressMouse {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoad_File verifies YAML values override the defaults.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen_addr: 0.0.0.0:9000\nlog_events: true\nsuppress_keyboard: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" || !cfg.LogEvents || !cfg.SuppressKeyboard {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.TapEnabled {
		t.Fatalf("unset file keys must keep defaults: %+v", cfg)
	}
}

// TestLoad_EnvOverridesFile verifies environment values win over the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: 0.0.0.0:9000\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("INPUTHOOK_LISTEN_ADDR", "127.0.0.1:9001")
	t.Setenv("INPUTHOOK_SUPPRESS_MOUSE", "yes")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9001" || !cfg.SuppressMouse {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestLoad_MissingFile verifies an explicitly named file must exist.
func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestLoad_BadYAML verifies malformed files are rejected.
func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestLoad_TapRequiresAddr verifies an enabled tap cannot have an empty
// listen address.
func TestLoad_TapRequiresAddr(t *testing.T) {
	t.Setenv("INPUTHOOK_TAP_ENABLED", "on")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \"\"\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
}

func TestLoadConfigFile(t *testing.T) {
	writeConfigFile(t, `
backend_url = "https://trace.example.com"

[canvas]
width = 1024
height = 768
scale = 3.0
`)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.BackendURL != "https://trace.example.com" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("canvas = %vx%v, want 1024x768", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Scale != 3.0 {
		t.Errorf("scale = %v, want 3.0", cfg.Canvas.Scale)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	writeConfigFile(t, `backend_url = [not toml`)

	_, err := loadConfig()
	if err == nil {
		t.Fatal("loadConfig() = nil error, want parse failure")
	}
	if !cserrors.Is(err, cserrors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", cserrors.GetCode(err))
	}
}

func TestLoadConfigEmptyBackendFallsBack(t *testing.T) {
	writeConfigFile(t, `
[canvas]
width = 640
`)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
)

// DefaultBackendURL is the trace service endpoint used when no config
// file or flag overrides it.
const DefaultBackendURL = "http://localhost:8545"

// Config holds user-level settings loaded from the config file.
//
// The file lives at ~/.config/chainscope/config.toml (or under
// $XDG_CONFIG_HOME when set):
//
//	backend_url = "https://trace.example.com"
//
//	[canvas]
//	width  = 800
//	height = 600
//	scale  = 2.0
type Config struct {
	BackendURL string       `toml:"backend_url"`
	Canvas     CanvasConfig `toml:"canvas"`
}

// CanvasConfig holds default frame dimensions for rendered graphs.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Scale  float64 `toml:"scale"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	return Config{
		BackendURL: DefaultBackendURL,
	}
}

// configPath returns the config file location using XDG conventions.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file, falling back to defaults when
// the file is absent. A malformed file is an error; a missing one is not.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, cserrors.Wrap(cserrors.ErrCodeInvalidConfig, err, "malformed config file %s", path)
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}
	return cfg, nil
}

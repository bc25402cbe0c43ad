// Package config loads runtime configuration for the input hook daemon.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr = "127.0.0.1:8077"
	defaultTapEnabled = true
)

// Config holds runtime configuration values.
type Config struct {
	// ListenAddr is the HTTP address serving the event tap.
	ListenAddr string `yaml:"listen_addr"`
	// TapEnabled toggles the websocket event tap.
	TapEnabled bool `yaml:"tap_enabled"`
	// LogEvents writes every observed event to the log.
	LogEvents bool `yaml:"log_events"`
	// SuppressKeyboard withholds all captured keyboard events system-wide.
	SuppressKeyboard bool `yaml:"suppress_keyboard"`
	// SuppressMouse withholds all captured mouse events system-wide.
	SuppressMouse bool `yaml:"suppress_mouse"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr: defaultListenAddr,
		TapEnabled: defaultTapEnabled,
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ListenAddr = envString("INPUTHOOK_LISTEN_ADDR", cfg.ListenAddr)
	cfg.TapEnabled = envBool("INPUTHOOK_TAP_ENABLED", cfg.TapEnabled)
	cfg.LogEvents = envBool("INPUTHOOK_LOG_EVENTS", cfg.LogEvents)
	cfg.SuppressKeyboard = envBool("INPUTHOOK_SUPPRESS_KEYBOARD", cfg.SuppressKeyboard)
	cfg.SuppressMouse = envBool("INPUTHOOK_SUPPRESS_MOUSE", cfg.SuppressMouse)

	if cfg.TapEnabled && cfg.ListenAddr == "" {
		return Config{}, errors.New("listen_addr is required when the tap is enabled")
	}
	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

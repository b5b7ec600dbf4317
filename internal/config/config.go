// Package config provides configuration management for the winhook monitor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the monitor configuration.
type Config struct {
	Capture  CaptureConfig  `toml:"capture"`
	Recorder RecorderConfig `toml:"recorder"`
	Server   ServerConfig   `toml:"server"`
	Tray     TrayConfig     `toml:"tray"`
}

// CaptureConfig selects which hooks are installed and how often the consumer
// polls for events.
type CaptureConfig struct {
	Keyboard       bool `toml:"keyboard"`
	Mouse          bool `toml:"mouse"`
	PollIntervalMs int  `toml:"poll_interval_ms"`
}

// RecorderConfig controls the persistent event log.
type RecorderConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // empty: events.db next to the config file
}

// ServerConfig controls the WebSocket broadcast server.
type ServerConfig struct {
	Enabled    bool   `toml:"enabled"`
	ListenAddr string `toml:"listen_addr"`
}

// TrayConfig controls the system tray icon.
type TrayConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Keyboard:       true,
			Mouse:          true,
			PollIntervalMs: 5,
		},
		Recorder: RecorderConfig{
			Enabled: false,
		},
		Server: ServerConfig{
			Enabled:    false,
			ListenAddr: "127.0.0.1:18100",
		},
		Tray: TrayConfig{
			Enabled: false,
		},
	}
}

// DefaultPath returns the per-user location of the configuration file,
// creating the directory if needed.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "config.toml"), nil
}

func configDir() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "winhook"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "winhook"), nil
}

// Load reads the configuration at path, creating it with defaults when it
// does not exist. An empty path selects DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Capture.Keyboard && !c.Capture.Mouse {
		return fmt.Errorf("capture: at least one of keyboard and mouse must be enabled")
	}
	if c.Capture.PollIntervalMs <= 0 {
		return fmt.Errorf("capture: poll_interval_ms must be positive")
	}
	if c.Server.Enabled && c.Server.ListenAddr == "" {
		return fmt.Errorf("server: listen_addr is required when the server is enabled")
	}
	return nil
}

func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

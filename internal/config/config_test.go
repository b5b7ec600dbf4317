package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadCreatesDefaults tests that a missing file is created with defaults
func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cfg.Capture.Keyboard || !cfg.Capture.Mouse {
		t.Error("Expected both hooks enabled by default")
	}
	if cfg.Capture.PollIntervalMs != 5 {
		t.Errorf("Expected default poll interval 5ms, got %d", cfg.Capture.PollIntervalMs)
	}
	if cfg.Server.Enabled || cfg.Recorder.Enabled || cfg.Tray.Enabled {
		t.Error("Expected optional features disabled by default")
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the default config to be written: %v", err)
	}
}

// TestLoadParsesFile tests loading an explicit configuration
func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[capture]
keyboard = true
mouse = false
poll_interval_ms = 20

[recorder]
enabled = true
path = "C:/tmp/events.db"

[server]
enabled = true
listen_addr = "127.0.0.1:9999"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Capture.Mouse {
		t.Error("Expected mouse capture disabled")
	}
	if cfg.Capture.PollIntervalMs != 20 {
		t.Errorf("Expected poll interval 20ms, got %d", cfg.Capture.PollIntervalMs)
	}
	if !cfg.Recorder.Enabled || cfg.Recorder.Path != "C:/tmp/events.db" {
		t.Errorf("Unexpected recorder config: %+v", cfg.Recorder)
	}
	if !cfg.Server.Enabled || cfg.Server.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("Unexpected server config: %+v", cfg.Server)
	}
}

// TestLoadRejectsInvalid tests validation failures
func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"no hooks selected",
			"[capture]\nkeyboard = false\nmouse = false\n",
		},
		{
			"non-positive poll interval",
			"[capture]\nkeyboard = true\nmouse = true\npoll_interval_ms = 0\n",
		},
		{
			"server without address",
			"[server]\nenabled = true\nlisten_addr = \"\"\n",
		},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
			t.Fatalf("%s: write config: %v", tt.name, err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

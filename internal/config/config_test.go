package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghud.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Interval != 200*time.Millisecond {
		t.Errorf("Interval = %v", c.Interval)
	}
	if !c.Mono || !c.QVGA || c.Scale != 2 {
		t.Errorf("devices mono=%v qvga=%v scale=%d", c.Mono, c.QVGA, c.Scale)
	}
	if c.Log.Level != "info" || c.Log.Format != "json" || c.Log.Dir != "" {
		t.Errorf("log = %+v", c.Log)
	}
	if c.Scenario != "" || c.File != "" {
		t.Errorf("scenario=%q file=%q", c.Scenario, c.File)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: text
hud:
  interval: 50ms
devices:
  mono: false
window:
  scale: 3
scenario:
  path: duna.json
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Log.Level != "debug" || c.Log.Format != "text" {
		t.Errorf("log = %+v", c.Log)
	}
	if c.Interval != 50*time.Millisecond || c.Mono || !c.QVGA || c.Scale != 3 {
		t.Errorf("config = %+v", c)
	}
	if c.Scenario != "duna.json" || c.File != path {
		t.Errorf("scenario=%q file=%q", c.Scenario, c.File)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GHUD_HUD_INTERVAL", "100ms")
	t.Setenv("GHUD_LOG_LEVEL", "warn")

	c, err := Load(writeConfig(t, "hud:\n  interval: 1s\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Interval != 100*time.Millisecond {
		t.Errorf("Interval = %v, want env value", c.Interval)
	}
	if c.Log.Level != "warn" {
		t.Errorf("Level = %q", c.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		substr string
	}{
		{"no devices", "devices:\n  mono: false\n  qvga: false\n", "no device"},
		{"scale", "window:\n  scale: 0\n", "window.scale"},
		{"interval", "hud:\n  interval: -1s\n", "negative"},
		{"level", "log:\n  level: chatty\n", "chatty"},
		{"syntax", "hud: [\n", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("accepted")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing explicit config accepted")
	}
}

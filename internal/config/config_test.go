package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sevenlights/internal/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sevenlights.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Player.MaxUseDistance != 4.0 {
		t.Errorf("Expected use distance 4, got %v", cfg.Player.MaxUseDistance)
	}
	if cfg.Messages.DurationSeconds != 5.0 || cfg.Messages.Color != "Red" {
		t.Errorf("Unexpected message defaults %+v", cfg.Messages)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Error("Expected defaults")
	}

	if _, err := Load(""); err != nil {
		t.Errorf("Empty path should give defaults, got %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
player:
  max_use_distance: 2.5
  spawn: [1, 0, -3]
input:
  use: F
scene: levels/cellar.json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.MaxUseDistance != 2.5 {
		t.Errorf("Expected 2.5, got %v", cfg.Player.MaxUseDistance)
	}
	if cfg.Player.EyeHeight != 1.7 {
		t.Errorf("Eye height should keep its default, got %v", cfg.Player.EyeHeight)
	}
	if len(cfg.Player.Spawn) != 3 || cfg.Player.Spawn[2] != -3 {
		t.Errorf("Unexpected spawn %v", cfg.Player.Spawn)
	}
	if cfg.Scene != "levels/cellar.json" {
		t.Errorf("Unexpected scene %q", cfg.Scene)
	}
	b := cfg.Bindings()
	if b[input.ActionUse] != "F" || b[input.ActionInventory] != "I" || b[input.ActionScreenshot] != "F12" {
		t.Errorf("Unexpected bindings %v", b)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "window: [",
		"zero width":    "window:\n  width: 0\n",
		"use distance":  "player:\n  max_use_distance: -1\n",
		"spawn":         "player:\n  spawn: [1, 2]\n",
		"duration":      "messages:\n  duration_seconds: 0\n",
		"unknown key":   "input:\n  inventory: Hyper\n",
		"unknown color": "messages:\n  color: Chartreuse\n",
		"max size":      "capture:\n  max_size: -5\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.HasPrefix(err.Error(), "config: ") {
			t.Errorf("%s: expected config prefix, got %v", name, err)
		}
	}
}

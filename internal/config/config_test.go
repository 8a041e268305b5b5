package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, expected the defaults", cfg)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("Embedded YAML = %+v, diverges from DefaultConfig()", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
grid:
  width: 60
  height: 30
speed:
  initial_rate: 8
  max_rate: 25
audio:
  enabled: false
  music_volume: 0.1
  sfx_volume: 0.9
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 60 || cfg.Grid.Height != 30 {
		t.Errorf("Grid = %+v, expected 60x30", cfg.Grid)
	}
	if cfg.Speed.InitialRate != 8 || cfg.Speed.MaxRate != 25 {
		t.Errorf("Speed = %+v, expected 8/25", cfg.Speed)
	}
	if cfg.Audio.Enabled || cfg.Audio.MusicVolume != 0.1 || cfg.Audio.SFXVolume != 0.9 {
		t.Errorf("Audio = %+v, expected disabled 0.1/0.9", cfg.Audio)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 50 {
		t.Errorf("Grid width = %d, expected the override 50", cfg.Grid.Width)
	}
	def := DefaultConfig()
	if cfg.Grid.Height != def.Grid.Height {
		t.Errorf("Grid height = %d, expected default %d", cfg.Grid.Height, def.Grid.Height)
	}
	if cfg.Scoring != def.Scoring || cfg.Audio != def.Audio {
		t.Errorf("Unset sections changed: %+v", cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadBadCustomFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with unparsable YAML should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".termsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("speed:\n  max_rate: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.MaxRate != 15 {
		t.Errorf("Max rate = %d, expected the user override 15", cfg.Speed.MaxRate)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := ExpandHome("~/.termsnake/scores.json")
	want := filepath.Join(home, ".termsnake", "scores.json")
	if got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got := ExpandHome("/abs/path.json"); got != "/abs/path.json" {
		t.Errorf("ExpandHome() rewrote an absolute path: %q", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestPresetSettings(t *testing.T) {
	cfg := Default()
	tests := []struct {
		preset Preset
		want   PresetSettings
	}{
		{PresetEasy, PresetSettings{EnemyCount: 6, SpeedMultiplier: 0.8, ScoreStep: 400}},
		{PresetMedium, PresetSettings{EnemyCount: 8, SpeedMultiplier: 1.0, ScoreStep: 400}},
		{PresetHard, PresetSettings{EnemyCount: 10, SpeedMultiplier: 1.3, ScoreStep: 250}},
		{Preset("bogus"), PresetSettings{EnemyCount: 8, SpeedMultiplier: 1.0, ScoreStep: 400}},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			if got := cfg.Settings(tt.preset); got != tt.want {
				t.Errorf("Settings(%q) = %+v, want %+v", tt.preset, got, tt.want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{"easy", PresetEasy, false},
		{"EASY", PresetEasy, false},
		{" hard ", PresetHard, false},
		{"medium", PresetMedium, false},
		{"normal", PresetMedium, false},
		{"", PresetMedium, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("orb:\n  spawn_interval: 1500ms\npresets:\n  hard:\n    enemy_count: 12\n")
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Orb.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, want 1.5s", cfg.Orb.SpawnInterval)
	}
	if cfg.Presets.Hard.EnemyCount != 12 {
		t.Errorf("Hard.EnemyCount = %d, want 12", cfg.Presets.Hard.EnemyCount)
	}
	// Untouched keys keep their defaults.
	if cfg.Presets.Hard.ScoreStep != 250 {
		t.Errorf("Hard.ScoreStep = %d, want 250", cfg.Presets.Hard.ScoreStep)
	}
	if cfg.Orb.Lifetime != 10*time.Second {
		t.Errorf("Lifetime = %v, want 10s", cfg.Orb.Lifetime)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero score step", func(c *Config) { c.Presets.Medium.ScoreStep = 0 }, "presets.medium.score_step"},
		{"zero recharge", func(c *Config) { c.Laser.RechargeEvery = 0 }, "laser.recharge_every"},
		{"inverted speed range", func(c *Config) { c.Enemy.MaxSpeed = 1 }, "enemy speed range"},
		{"no spawn interval", func(c *Config) { c.Orb.SpawnInterval = 0 }, "orb.spawn_interval"},
		{"negative enemies", func(c *Config) { c.Presets.Easy.EnemyCount = -1 }, "presets.easy.enemy_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.field)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  enemy_kill: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Scoring.EnemyKill != 250 {
		t.Errorf("EnemyKill = %d, want 250", cfg.Scoring.EnemyKill)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("laser: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) = nil error, want error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load with no files = %+v, want defaults", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := []byte("player:\n  speed: 7\n")
	if err := os.WriteFile(filepath.Join(work, "configs", configFile), local, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, want 7 from ./configs", cfg.Player.Speed)
	}

	// User config wins over local.
	if err := os.MkdirAll(filepath.Join(home, ".laserbounce"), 0o755); err != nil {
		t.Fatal(err)
	}
	user := []byte("player:\n  speed: 9\n")
	if err := os.WriteFile(filepath.Join(home, ".laserbounce", "config.yaml"), user, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %v, want 9 from user config", cfg.Player.Speed)
	}
}

func TestPresetTitle(t *testing.T) {
	for _, p := range Presets {
		if p.Title() == "" {
			t.Errorf("%q has empty title", p)
		}
	}
	if PresetHard.Title() != "Hard" {
		t.Errorf("Hard title = %q", PresetHard.Title())
	}
}

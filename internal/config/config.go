// Package config provides YAML-based game configuration loading and
// difficulty presets for Laser Bounce.
package config

import "time"

// Config contains all tunables of the simulation and its terminal shell.
// Distances and speeds are in playfield pixels, per tick where applicable,
// before speed-scale is applied.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Laser     LaserConfig     `yaml:"laser"`
	Orb       OrbConfig       `yaml:"orb"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Presets   PresetTable     `yaml:"presets"`
	Display   DisplayConfig   `yaml:"display"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines viewport scaling.
type PlayfieldConfig struct {
	BaseWidth float64 `yaml:"base_width"` // Width at which speed-scale is 1.0
	MinScale  float64 `yaml:"min_scale"`  // Lower bound of speed-scale
	MinWidth  float64 `yaml:"min_width"`  // Smallest usable playfield width
	MinHeight float64 `yaml:"min_height"` // Smallest usable playfield height
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines bouncing enemies.
type EnemyConfig struct {
	Radius       float64 `yaml:"radius"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	CornerJitter float64 `yaml:"corner_jitter"` // Random offset range from the corner inset
	CornerInset  float64 `yaml:"corner_inset"`  // Fixed distance from the playfield corner
	TierSpeedup  float64 `yaml:"tier_speedup"`  // Velocity multiplier per difficulty tier
}

// LaserConfig defines the projectile weapon and its unlock schedule.
type LaserConfig struct {
	Speed         float64 `yaml:"speed"` // Multiple of the player speed
	Length        float64 `yaml:"length"`
	TipRadius     float64 `yaml:"tip_radius"`
	AmmoPerGrant  int     `yaml:"ammo_per_grant"`
	UnlockScore   int     `yaml:"unlock_score"`
	RechargeEvery int     `yaml:"recharge_every"`
	BannerTicks   int     `yaml:"banner_ticks"`
}

// OrbConfig defines timed pickups.
type OrbConfig struct {
	Radius        float64       `yaml:"radius"`
	SpawnMargin   float64       `yaml:"spawn_margin"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	Lifetime      time.Duration `yaml:"lifetime"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	EnemyKill int `yaml:"enemy_kill"`
	OrbPickup int `yaml:"orb_pickup"`
}

// PresetSettings are the per-difficulty constants, fixed for a whole run.
type PresetSettings struct {
	EnemyCount      int     `yaml:"enemy_count"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	ScoreStep       int     `yaml:"score_step"`
}

// PresetTable holds the settings for every difficulty preset.
type PresetTable struct {
	Easy   PresetSettings `yaml:"easy"`
	Medium PresetSettings `yaml:"medium"`
	Hard   PresetSettings `yaml:"hard"`
}

// DisplayConfig maps playfield pixels onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// InputConfig tunes how terminal key presses become held directions.
// Terminals report presses only, so a direction stays held for a short
// window after each press.
type InputConfig struct {
	HoldInitial time.Duration `yaml:"hold_initial"` // Window after a fresh press
	HoldRepeat  time.Duration `yaml:"hold_repeat"`  // Window after an auto-repeat press
}

// AudioConfig defines the synthesized sound output.
type AudioConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	MusicVolume  float64 `yaml:"music_volume"`  // Background level while playing
	DuckedVolume float64 `yaml:"ducked_volume"` // Background level after a weapon grant
	EffectVolume float64 `yaml:"effect_volume"`
}

// Settings returns the settings for the given preset.
// Unknown presets fall back to medium.
func (c Config) Settings(p Preset) PresetSettings {
	switch p {
	case PresetEasy:
		return c.Presets.Easy
	case PresetHard:
		return c.Presets.Hard
	default:
		return c.Presets.Medium
	}
}

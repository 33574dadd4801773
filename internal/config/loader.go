package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "laserbounce.yaml"

// Load loads the Laser Bounce configuration.
// Search order: customPath -> ~/.laserbounce/config.yaml -> ./configs/laserbounce.yaml -> embedded default.
// Files are decoded over the defaults, so a file may override only a few keys.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every setting that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.BaseWidth > 0, "playfield.base_width must be positive, got %v", c.Playfield.BaseWidth)
	check(c.Playfield.MinScale > 0, "playfield.min_scale must be positive, got %v", c.Playfield.MinScale)
	check(c.Playfield.MinWidth > 0 && c.Playfield.MinHeight > 0, "playfield minimum size must be positive")
	check(c.Player.Radius > 0, "player.radius must be positive, got %v", c.Player.Radius)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %v", c.Player.Speed)
	check(c.Enemy.Radius > 0, "enemy.radius must be positive, got %v", c.Enemy.Radius)
	check(c.Enemy.MinSpeed > 0 && c.Enemy.MaxSpeed >= c.Enemy.MinSpeed,
		"enemy speed range [%v, %v] is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	check(c.Enemy.TierSpeedup >= 1, "enemy.tier_speedup must be at least 1, got %v", c.Enemy.TierSpeedup)
	check(c.Laser.Speed > 0, "laser.speed must be positive, got %v", c.Laser.Speed)
	check(c.Laser.AmmoPerGrant > 0, "laser.ammo_per_grant must be positive, got %d", c.Laser.AmmoPerGrant)
	check(c.Laser.RechargeEvery > 0, "laser.recharge_every must be positive, got %d", c.Laser.RechargeEvery)
	check(c.Laser.BannerTicks >= 0, "laser.banner_ticks must not be negative, got %d", c.Laser.BannerTicks)
	check(c.Orb.Radius > 0, "orb.radius must be positive, got %v", c.Orb.Radius)
	check(c.Orb.SpawnInterval > 0, "orb.spawn_interval must be positive, got %v", c.Orb.SpawnInterval)
	check(c.Orb.Lifetime > 0, "orb.lifetime must be positive, got %v", c.Orb.Lifetime)
	check(c.Display.CellWidth > 0 && c.Display.CellHeight > 0, "display cell size must be positive")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.MusicVolume >= 0 && c.Audio.DuckedVolume >= 0 && c.Audio.EffectVolume >= 0,
		"audio volumes must not be negative")

	for _, p := range Presets {
		s := c.Settings(p)
		check(s.EnemyCount >= 0, "presets.%s.enemy_count must not be negative, got %d", p, s.EnemyCount)
		check(s.SpeedMultiplier > 0, "presets.%s.speed_multiplier must be positive, got %v", p, s.SpeedMultiplier)
		check(s.ScoreStep > 0, "presets.%s.score_step must be positive, got %d", p, s.ScoreStep)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".laserbounce", "config.yaml")
}

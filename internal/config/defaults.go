package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/laserbounce.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			BaseWidth: 1600,
			MinScale:  0.7,
			MinWidth:  320,
			MinHeight: 240,
		},
		Player: PlayerConfig{
			Radius: 18,
			Speed:  6,
		},
		Enemy: EnemyConfig{
			Radius:       12,
			MinSpeed:     3,
			MaxSpeed:     4.7,
			CornerJitter: 50,
			CornerInset:  15,
			TierSpeedup:  1.1,
		},
		Laser: LaserConfig{
			Speed:         14,
			Length:        40,
			TipRadius:     5,
			AmmoPerGrant:  30,
			UnlockScore:   200,
			RechargeEvery: 200,
			BannerTicks:   180, // 3 seconds at 60 FPS
		},
		Orb: OrbConfig{
			Radius:        8,
			SpawnMargin:   10,
			SpawnInterval: 3 * time.Second,
			Lifetime:      10 * time.Second,
		},
		Scoring: ScoringConfig{
			EnemyKill: 100,
			OrbPickup: 50,
		},
		Presets: PresetTable{
			Easy:   PresetSettings{EnemyCount: 6, SpeedMultiplier: 0.8, ScoreStep: 400},
			Medium: PresetSettings{EnemyCount: 8, SpeedMultiplier: 1.0, ScoreStep: 400},
			Hard:   PresetSettings{EnemyCount: 10, SpeedMultiplier: 1.3, ScoreStep: 250},
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: InputConfig{
			HoldInitial: 300 * time.Millisecond,
			HoldRepeat:  120 * time.Millisecond,
		},
		Audio: AudioConfig{
			SampleRate:   44100,
			MusicVolume:  0.4,
			DuckedVolume: 0.2,
			EffectVolume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

package laserbounce

import (
	"math"
	"time"

	"github.com/vovakirdan/laser-bounce/internal/config"
)

// Rules are the constants of one run: the loaded configuration resolved
// against the selected preset. They never change while the run lives.
type Rules struct {
	Preset config.Preset
	Cfg    config.Config

	EnemyCount      int
	SpeedMultiplier float64
	ScoreStep       int
}

// NewRules resolves cfg for preset.
func NewRules(cfg config.Config, preset config.Preset) Rules {
	s := cfg.Settings(preset)
	return Rules{
		Preset:          preset,
		Cfg:             cfg,
		EnemyCount:      s.EnemyCount,
		SpeedMultiplier: s.SpeedMultiplier,
		ScoreStep:       s.ScoreStep,
	}
}

// SpeedScale returns the motion and size multiplier for a playfield width.
func (r Rules) SpeedScale(width float64) float64 {
	return math.Max(width/r.Cfg.Playfield.BaseWidth, r.Cfg.Playfield.MinScale)
}

// Bounds degrades an invalid or tiny viewport to the minimum usable size.
func (r Rules) Bounds(width, height float64) (float64, float64) {
	return atLeast(width, r.Cfg.Playfield.MinWidth), atLeast(height, r.Cfg.Playfield.MinHeight)
}

// OrbLifetime returns how long an orb lives before it is force-expired.
func (r Rules) OrbLifetime() time.Duration {
	return r.Cfg.Orb.Lifetime
}

// OrbInterval returns the orb spawn cadence.
func (r Rules) OrbInterval() time.Duration {
	return r.Cfg.Orb.SpawnInterval
}

func atLeast(v, min float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < min {
		return min
	}
	return v
}

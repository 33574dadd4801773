package laserbounce

import "github.com/vovakirdan/laser-bounce/internal/config"

// Snapshot is a read-only copy of everything the presentation layer draws.
// Entities are listed in store order; shot enemies are never included.
type Snapshot struct {
	RunID  uint64
	Preset config.Preset
	State  State

	Width, Height float64
	Scale         float64

	Score      int
	Frames     uint64
	Tier       int
	Ammo       int
	Unlocked   bool
	Banner     int
	BannerKind BannerKind
	Over       bool

	Player  Player
	Enemies []Enemy
	Lasers  []Laser
	Orbs    []Orb
}

// Snapshot returns the current state. Before the first run it describes
// an empty playfield.
func (d *Driver) Snapshot() Snapshot {
	if d.run == nil {
		return Snapshot{
			Preset: d.preset,
			State:  d.state,
			Width:  d.width,
			Height: d.height,
			Scale:  NewRules(d.cfg, d.preset).SpeedScale(d.width),
		}
	}
	return snapshotOf(d.run, d.state)
}

func snapshotOf(r *Run, state State) Snapshot {
	enemies := make([]Enemy, 0, r.Enemies.Len())
	r.Enemies.Each(func(_ ID, e *Enemy) bool {
		if e.Active {
			enemies = append(enemies, *e)
		}
		return true
	})
	return Snapshot{
		RunID:      r.ID,
		Preset:     r.Preset,
		State:      state,
		Width:      r.Width,
		Height:     r.Height,
		Scale:      r.Scale,
		Score:      r.Score,
		Frames:     r.Frames,
		Tier:       r.Tier,
		Ammo:       r.Ammo,
		Unlocked:   r.Unlocked,
		Banner:     r.Banner,
		BannerKind: r.BannerKind,
		Over:       r.Over,
		Player:     r.Player,
		Enemies:    enemies,
		Lasers:     r.Lasers.Values(),
		Orbs:       r.Orbs.Values(),
	}
}

package laserbounce

import "github.com/vovakirdan/laser-bounce/internal/config"

// BannerKind tells the overlay which weapon event the banner announces.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerUnlocked
	BannerRecharged
)

// Run is the whole mutable state of one game, from start to game over.
// The Driver owns exactly one Run at a time and replaces it on start.
type Run struct {
	ID     uint64
	Preset config.Preset

	// Playfield in pixels and the speed-scale derived from its width.
	Width, Height float64
	Scale         float64

	Player  Player
	Enemies Store[Enemy]
	Lasers  Store[Laser]
	Orbs    Store[Orb]

	Score      int
	Frames     uint64
	Tier       int // Difficulty tiers reached
	Ammo       int
	Unlocked   bool
	UnlockTier int // Weapon grants given so far
	Banner     int // Ticks left on the weapon banner
	BannerKind BannerKind
	Over       bool // Terminal latch
}

// newRun builds a fresh run with the player centered in a width×height field.
func newRun(id uint64, rules Rules, width, height float64) *Run {
	scale := rules.SpeedScale(width)
	return &Run{
		ID:     id,
		Preset: rules.Preset,
		Width:  width,
		Height: height,
		Scale:  scale,
		Player: Player{
			X:      width / 2,
			Y:      height / 2,
			Radius: rules.Cfg.Player.Radius * scale,
			Speed:  rules.Cfg.Player.Speed * scale,
		},
	}
}

// rescale applies a new playfield size. Positions, velocities and sizes
// are multiplied by the ratio of new to old speed-scale, then every circle
// is clamped back inside the field. Score and entity identity are kept.
func (r *Run) rescale(width, height, scale float64) {
	ratio := 1.0
	if r.Scale > 0 {
		ratio = scale / r.Scale
	}
	r.Width, r.Height, r.Scale = width, height, scale

	p := &r.Player
	p.X *= ratio
	p.Y *= ratio
	p.DX *= ratio
	p.DY *= ratio
	p.Radius *= ratio
	p.Speed *= ratio
	p.X = clampAxis(p.X, p.Radius, width)
	p.Y = clampAxis(p.Y, p.Radius, height)

	r.Enemies.Each(func(_ ID, e *Enemy) bool {
		e.X *= ratio
		e.Y *= ratio
		e.DX *= ratio
		e.DY *= ratio
		e.Radius *= ratio
		e.X = clampAxis(e.X, e.Radius, width)
		e.Y = clampAxis(e.Y, e.Radius, height)
		return true
	})

	r.Lasers.Each(func(_ ID, l *Laser) bool {
		l.X *= ratio
		l.Y *= ratio
		l.DX *= ratio
		l.DY *= ratio
		l.Length *= ratio
		return true
	})

	r.Orbs.Each(func(_ ID, o *Orb) bool {
		o.X *= ratio
		o.Y *= ratio
		o.Radius *= ratio
		o.X = clampAxis(o.X, o.Radius, width)
		o.Y = clampAxis(o.Y, o.Radius, height)
		return true
	})
}

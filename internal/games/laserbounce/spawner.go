package laserbounce

import "math/rand"

// Corner of the playfield an enemy spawns in.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Spawner creates enemies and orbs from its own seeded RNG.
type Spawner struct {
	rng   *rand.Rand
	rules Rules
}

// NewSpawner creates a spawner for rules.
func NewSpawner(rules Rules, seed int64) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)), //#nosec G404 -- game randomness
		rules: rules,
	}
}

// SpawnEnemy adds one enemy near a random corner, moving diagonally with a
// random sign per axis.
func (s *Spawner) SpawnEnemy(run *Run) ID {
	ec := s.rules.Cfg.Enemy
	speed := (ec.MinSpeed + s.rng.Float64()*(ec.MaxSpeed-ec.MinSpeed)) * s.rules.SpeedMultiplier * run.Scale

	x, y := s.cornerPoint(Corner(s.rng.Intn(4)), run.Width, run.Height)
	e := Enemy{
		X:      x,
		Y:      y,
		Radius: ec.Radius * run.Scale,
		DX:     s.sign() * speed,
		DY:     s.sign() * speed,
		Hue:    s.rng.Float64() * 360,
		Active: true,
	}
	return run.Enemies.Insert(e)
}

// SpawnOrb adds one orb at a uniformly random position away from the edges.
func (s *Spawner) SpawnOrb(run *Run) ID {
	m := s.rules.Cfg.Orb.SpawnMargin
	o := Orb{
		X:      m + s.rng.Float64()*(run.Width-2*m),
		Y:      m + s.rng.Float64()*(run.Height-2*m),
		Radius: s.rules.Cfg.Orb.Radius * run.Scale,
	}
	return run.Orbs.Insert(o)
}

// cornerPoint jitters a point inward from the given corner.
func (s *Spawner) cornerPoint(c Corner, width, height float64) (float64, float64) {
	ec := s.rules.Cfg.Enemy
	dx := s.rng.Float64()*ec.CornerJitter + ec.CornerInset
	dy := s.rng.Float64()*ec.CornerJitter + ec.CornerInset
	switch c {
	case CornerTopRight:
		return width - dx, dy
	case CornerBottomLeft:
		return dx, height - dy
	case CornerBottomRight:
		return width - dx, height - dy
	default:
		return dx, dy
	}
}

func (s *Spawner) sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

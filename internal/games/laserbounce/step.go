package laserbounce

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/laser-bounce/internal/core"
)

// Input is the directional state held during a tick.
type Input struct {
	Up, Down, Left, Right bool
}

// InputFromFrame extracts the held directions from an input frame.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:    f.Has(core.ActionUp),
		Down:  f.Has(core.ActionDown),
		Left:  f.Has(core.ActionLeft),
		Right: f.Has(core.ActionRight),
	}
}

// Sim advances a Run. It holds the run's rules and collaborators but no
// run state of its own.
type Sim struct {
	rules   Rules
	spawner *Spawner
	ev      *emitter
	log     *log.Logger
}

// NewSim creates a simulation. Nil collaborators are replaced with no-ops.
func NewSim(rules Rules, spawner *Spawner, l Listener, a Audio, logger *log.Logger) *Sim {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sim{
		rules:   rules,
		spawner: spawner,
		ev:      newEmitter(l, a, logger),
		log:     logger,
	}
}

// Rules returns the rules the simulation was built with.
func (s *Sim) Rules() Rules {
	return s.rules
}

// Populate spawns the preset's initial enemies into an empty run.
func (s *Sim) Populate(run *Run) {
	for range s.rules.EnemyCount {
		s.spawner.SpawnEnemy(run)
	}
}

// Step advances run by one tick. A run whose terminal latch is set is
// never mutated again.
func (s *Sim) Step(run *Run, in Input) {
	if run.Over {
		return
	}
	run.Frames++

	s.movePlayer(run, in)

	if s.moveEnemies(run) {
		run.Over = true
		s.ev.cue(CueDeath)
		s.ev.gameOver(run.Score)
		s.ev.score(run.Score)
		s.log.Info("game over", "run", run.ID, "score", run.Score, "frames", run.Frames, "tier", run.Tier)
		return
	}

	s.moveLasers(run)
	s.collectOrbs(run)
	s.advanceDifficulty(run)

	if run.Banner > 0 {
		run.Banner--
	}

	s.ev.score(run.Score)
}

// Fire launches a laser along the player's movement direction. It returns
// false without side effects when the weapon is locked, out of ammo, or the
// player is standing still.
func (s *Sim) Fire(run *Run) bool {
	p := &run.Player
	if run.Over || !run.Unlocked || run.Ammo <= 0 || !p.Moving() {
		return false
	}

	lc := s.rules.Cfg.Laser
	n := math.Hypot(p.DX, p.DY)
	speed := lc.Speed * p.Speed
	run.Lasers.Insert(Laser{
		X:      p.X,
		Y:      p.Y,
		DX:     p.DX / n * speed,
		DY:     p.DY / n * speed,
		Length: lc.Length * run.Scale,
	})
	run.Ammo--
	s.ev.cue(CueLaser)
	return true
}

func (s *Sim) movePlayer(run *Run, in Input) {
	p := &run.Player
	p.DX, p.DY = 0, 0
	if in.Up {
		p.DY = -p.Speed
	}
	if in.Down {
		p.DY = p.Speed
	}
	if in.Left {
		p.DX = -p.Speed
	}
	if in.Right {
		p.DX = p.Speed
	}
	p.X = clampAxis(p.X+p.DX, p.Radius, run.Width)
	p.Y = clampAxis(p.Y+p.DY, p.Radius, run.Height)
}

// moveEnemies advances and bounces every active enemy and reports whether
// one touched the player. Scanning stops at the first contact.
func (s *Sim) moveEnemies(run *Run) bool {
	pc := run.Player.Circle()
	hit := false
	run.Enemies.Each(func(_ ID, e *Enemy) bool {
		if !e.Active {
			return true
		}
		e.X += e.DX
		e.Y += e.DY

		// Past a bound the velocity points back inside.
		if e.X < e.Radius {
			e.DX = math.Abs(e.DX)
		} else if e.X > run.Width-e.Radius {
			e.DX = -math.Abs(e.DX)
		}
		if e.Y < e.Radius {
			e.DY = math.Abs(e.DY)
		} else if e.Y > run.Height-e.Radius {
			e.DY = -math.Abs(e.DY)
		}

		if e.Circle().Intersects(pc) {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// moveLasers advances every laser, drops those that left the field, and
// lets each remaining laser destroy at most one enemy.
func (s *Sim) moveLasers(run *Run) {
	tipRadius := s.rules.Cfg.Laser.TipRadius
	kill := s.rules.Cfg.Scoring.EnemyKill

	run.Lasers.Each(func(lid ID, l *Laser) bool {
		l.X += l.DX
		l.Y += l.DY
		if l.OutOfBounds(run.Width, run.Height) {
			run.Lasers.Remove(lid)
			return true
		}

		tip := l.Tip(tipRadius)
		run.Enemies.Each(func(_ ID, e *Enemy) bool {
			if !e.Active || !tip.Intersects(e.Circle()) {
				return true
			}
			e.Active = false
			run.Score += kill
			run.Lasers.Remove(lid)
			s.ev.cue(CueHit)
			return false
		})
		return true
	})

	run.Enemies.Each(func(id ID, e *Enemy) bool {
		if !e.Active {
			run.Enemies.Remove(id)
		}
		return true
	})
}

func (s *Sim) collectOrbs(run *Run) {
	pc := run.Player.Circle()
	award := s.rules.Cfg.Scoring.OrbPickup
	run.Orbs.Each(func(id ID, o *Orb) bool {
		if pc.Intersects(o.Circle()) {
			run.Score += award
			run.Orbs.Remove(id)
			s.ev.cue(CueHit)
		}
		return true
	})
}

package laserbounce

import (
	"math"

	"github.com/vovakirdan/laser-bounce/internal/core"
)

// Player is the avatar. DX/DY are recomputed from input every tick.
type Player struct {
	X, Y   float64
	Radius float64
	Speed  float64
	DX, DY float64
}

// Circle returns the player's collision circle.
func (p *Player) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}

// Moving reports whether the player has a nonzero velocity this tick.
func (p *Player) Moving() bool {
	return p.DX != 0 || p.DY != 0
}

// Enemy is a bouncing hazard. Inactive enemies have been shot and are
// swept from the store before the tick ends.
type Enemy struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Hue    float64 // Degrees in [0, 360)
	Active bool
}

// Circle returns the enemy's collision circle.
func (e *Enemy) Circle() core.Circle {
	return core.Circle{X: e.X, Y: e.Y, Radius: e.Radius}
}

// Laser is a projectile. X/Y is the tip; the visible beam trails Length
// pixels behind it.
type Laser struct {
	X, Y   float64
	DX, DY float64
	Length float64
}

// Tip returns the circle used for hit tests.
func (l *Laser) Tip(radius float64) core.Circle {
	return core.Circle{X: l.X, Y: l.Y, Radius: radius}
}

// Tail returns the far end of the visible beam.
func (l *Laser) Tail() (float64, float64) {
	n := math.Hypot(l.DX, l.DY)
	if n == 0 {
		return l.X, l.Y
	}
	return l.X - l.DX/n*l.Length, l.Y - l.DY/n*l.Length
}

// OutOfBounds reports whether the tip has left the playfield.
func (l *Laser) OutOfBounds(width, height float64) bool {
	return l.X < 0 || l.X > width || l.Y < 0 || l.Y > height
}

// Orb is a timed pickup.
type Orb struct {
	X, Y   float64
	Radius float64
}

// Circle returns the orb's collision circle.
func (o *Orb) Circle() core.Circle {
	return core.Circle{X: o.X, Y: o.Y, Radius: o.Radius}
}

// clampAxis keeps a circle of radius r inside [0, bound] on one axis.
// When the circle is wider than the bound it is centered.
func clampAxis(v, r, bound float64) float64 {
	if 2*r > bound {
		return bound / 2
	}
	return core.ClampF(v, r, bound-r)
}

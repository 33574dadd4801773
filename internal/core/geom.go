// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Circle is a disc in playfield pixel space. Every collision test in the
// simulation is expressed as circle against circle.
type Circle struct {
	X, Y   float64 // Center
	Radius float64
}

// Intersects reports whether two circles overlap: the distance between the
// centers is strictly less than the sum of the radii. Touching circles do not
// intersect.
func Intersects(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius
}

// Intersects is the method form of the package-level Intersects.
func (c Circle) Intersects(other Circle) bool {
	return Intersects(c, other)
}

// Rect represents an axis-aligned box in screen cells, used for overlay boxes.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

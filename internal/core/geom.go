// Package core provides the fundamental types shared by the simulation and the
// platform layers. It has no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
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

// Vec is a 2D vector in world pixels.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// RectF is an axis-aligned bounding box in world pixels.
// Position is the top-left corner.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a box at pos with the given size.
func NewRectF(pos Vec, w, h float64) RectF {
	return RectF{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the box.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// Sign returns -1, 0 or 1 following the sign of x.
func Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// FloorDiv returns floor(a / b) as an int, correct for negative a.
func FloorDiv(a, b float64) int {
	return int(math.Floor(a / b))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

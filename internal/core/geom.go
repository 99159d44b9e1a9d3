// Package core provides fundamental types and utilities shared by the engine
// and its hosts. It does not depend on any host library (Bubble Tea, ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Vec is a 2D vector in surface pixel space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithLen returns a vector with the same direction and the given magnitude.
// A zero vector stays zero.
func (v Vec) WithLen(l float64) Vec {
	n := v.Len()
	if n == 0 {
		return v
	}
	return v.Scale(l / n)
}

// RectF is an axis-aligned rectangle in surface pixel space.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether two rectangles overlap (touching edges do not count).
func (r RectF) Intersects(o RectF) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned
// rectangle, including the rounded corner regions.
func CircleIntersectsRect(c Vec, radius float64, r RectF) bool {
	halfW := r.W / 2
	halfH := r.H / 2
	dx := math.Abs(c.X - (r.X + halfW))
	dy := math.Abs(c.Y - (r.Y + halfH))

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cx := dx - halfW
	cy := dy - halfH
	return cx*cx+cy*cy <= radius*radius
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

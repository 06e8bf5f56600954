// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
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

// Box is an axis-aligned rectangle in playfield units, described by its
// center and full extents. Every entity of the simulation is a Box.
type Box struct {
	X, Y float64 // Center
	W, H float64 // Full width and height
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y - b.H/2
}

// Overlaps reports whether two boxes intersect by comparing the distance
// between their centers with the combined half-extents on each axis.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	intersectX := math.Abs(b.X-other.X) < b.W/2+other.W/2
	intersectY := math.Abs(b.Y-other.Y) < b.H/2+other.H/2
	return intersectX && intersectY
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

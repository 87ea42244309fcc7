// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// RectF is an axis-aligned bounding box in world units.
// X, Y is the top-left corner; Y grows downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// OverlapsX reports whether the horizontal extents overlap.
// Edges that only touch do not overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.Right() > other.Left() && r.Left() < other.Right()
}

// Intersects returns true if this rectangle overlaps with another.
func (r RectF) Intersects(other RectF) bool {
	return r.OverlapsX(other) && r.Bottom() > other.Top() && r.Top() < other.Bottom()
}

// Scale maps the rectangle into cell space using per-axis factors.
// The result always covers at least one cell so small objects stay visible.
func (r RectF) Scale(sx, sy float64) Rect {
	x := int(math.Floor(r.X * sx))
	y := int(math.Floor(r.Y * sy))
	w := int(math.Round(r.W * sx))
	h := int(math.Round(r.H * sy))
	return NewRect(x, y, Max(w, 1), Max(h, 1))
}

// Rect represents an axis-aligned box on the cell grid.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Package core provides fundamental types and utilities for the defender host.
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

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps real-valued play-field coordinates onto a block of cells.
// The field spans [0, FieldW) x [0, FieldH); the cells are Area.
type Viewport struct {
	FieldW, FieldH float64
	Area           Rect
}

// CellX converts a field x coordinate to a screen column.
func (v Viewport) CellX(x float64) int {
	if v.FieldW <= 0 {
		return v.Area.X
	}
	return v.Area.X + int(math.Floor(x/v.FieldW*float64(v.Area.W)))
}

// CellY converts a field y coordinate to a screen row.
func (v Viewport) CellY(y float64) int {
	if v.FieldH <= 0 {
		return v.Area.Y
	}
	return v.Area.Y + int(math.Floor(y/v.FieldH*float64(v.Area.H)))
}

// CellW converts a field width to a number of columns, at least 1.
func (v Viewport) CellW(w float64) int {
	if v.FieldW <= 0 {
		return 1
	}
	return max(1, int(math.Round(w/v.FieldW*float64(v.Area.W))))
}

// CellH converts a field height to a number of rows, at least 1.
func (v Viewport) CellH(h float64) int {
	if v.FieldH <= 0 {
		return 1
	}
	return max(1, int(math.Round(h/v.FieldH*float64(v.Area.H))))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Package core provides fundamental types and utilities for the slides platform.
// It contains no external dependencies to keep game logic pure and testable.
package core

// Point is an integer position in layout space (pixels for the preview image,
// cells for grid addresses).
type Point struct {
	X, Y int
}

// NewPoint creates a new point.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rect represents an axis-aligned region, used for image mappings.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Package geometry provides the value types the fixer engine positions
// elements with: document-relative rectangles, points, and scroll offsets.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
// For element geometry the coordinates are document-relative: Top is the
// distance from the document origin, not the viewport.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right-r.Left <= epsilon || r.Bottom-r.Top <= epsilon
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// ScrollOffset represents the document scroll position in pixels.
// Top grows as the page scrolls down, Left as it scrolls right.
type ScrollOffset struct {
	Top  float64
	Left float64
}

// FloatEqual returns true if two float64 values are approximately equal.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

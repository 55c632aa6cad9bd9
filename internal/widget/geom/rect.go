// Package geom holds the viewport geometry the widgets measure against.
// Coordinates are CSS pixels relative to the viewport, as returned by
// getBoundingClientRect.
package geom

// Point is a position in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left() + r.Right()) / 2,
		Y: (r.Top() + r.Bottom()) / 2,
	}
}

// AbsHeight returns the height regardless of sign.
func (r Rect) AbsHeight() float64 {
	return r.Bottom() - r.Top()
}

// IntersectsViewport reports whether any part of r lies within a viewport
// of the given height. Touching an edge counts as intersecting.
func (r Rect) IntersectsViewport(viewportHeight float64) bool {
	return r.Bottom() >= 0 && r.Top() <= viewportHeight
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

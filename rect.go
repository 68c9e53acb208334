package vg

import "math"

// Rect represents an axis-aligned rectangle anchored at its top-left
// corner (X, Y) with extent (W, H). Width and height may be zero.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints creates the smallest rectangle containing both points.
func RectFromPoints(p, q Point) Rect {
	x := math.Min(p.X, q.X)
	y := math.Min(p.Y, q.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(p.X, q.X) - x,
		H: math.Max(p.Y, q.Y) - y,
	}
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Unite returns the smallest rectangle containing both r and other.
func (r Rect) Unite(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), other.Right()) - x,
		H: math.Max(r.Bottom(), other.Bottom()) - y,
	}
}

// UnitePoint returns the smallest rectangle containing both r and p.
func (r Rect) UnitePoint(p Point) Rect {
	return r.Unite(RectFromPoints(p, p))
}

// Contains returns true if the point is inside the rectangle.
// Points on the boundary are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// IsEmpty returns true if the rectangle has zero width and height.
func (r Rect) IsEmpty() bool {
	return r.W == 0 && r.H == 0
}

// clampSmall rounds near-zero extents to exactly zero so they are never
// used as divisors in scale ratios.
func clampSmall(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}

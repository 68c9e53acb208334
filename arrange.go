package vg

import (
	"math"
	"sort"
)

// Arrangement operations: align, snap, sort, point-on-path and link.

// HAlign selects the horizontal edge used by Align.
type HAlign int

const (
	HNone HAlign = iota
	HLeft
	HCenter
	HRight
)

// VAlign selects the vertical edge used by Align.
type VAlign int

const (
	VNone VAlign = iota
	VTop
	VMiddle
	VBottom
)

// Align translates a shape so the selected edge of its bounds lands on
// position: the left/center/right edge at position.X and the
// top/middle/bottom edge at position.Y. HNone/VNone (or an unknown value)
// leaves that axis unchanged.
func Align(s Shape, position Point, h HAlign, v VAlign) Shape {
	if s == nil {
		return nil
	}

	b := Bounds(s)
	var dx, dy float64

	switch h {
	case HLeft:
		dx = position.X - b.Left()
	case HCenter:
		dx = position.X - b.Center().X
	case HRight:
		dx = position.X - b.Right()
	}

	switch v {
	case VTop:
		dy = position.Y - b.Top()
	case VMiddle:
		dy = position.Y - b.Center().Y
	case VBottom:
		dy = position.Y - b.Bottom()
	}

	return Translate(s, dx, dy)
}

// Snap rounds every coordinate toward the nearest multiple of distance,
// measured relative to an optional center offset, blended by strength in
// [0, 1]: 0 leaves the shape unchanged, 1 snaps fully to the grid.
func Snap(s Shape, distance, strength float64, center ...Point) Shape {
	if s == nil {
		return nil
	}
	if distance == 0 {
		return cloneShape(s)
	}

	var c Point
	if len(center) > 0 {
		c = center[0]
	}

	snapAxis := func(v, cv float64) float64 {
		snapped := cv + math.Round((v-cv)/distance)*distance
		return v + (snapped-v)*strength
	}
	return mapShapePoints(s, func(p Point) Point {
		return Point{X: snapAxis(p.X, c.X), Y: snapAxis(p.Y, c.Y)}
	})
}

// SortMethod selects the key ShapeSort orders by.
type SortMethod int

const (
	// SortByX orders by bounds-center x coordinate.
	SortByX SortMethod = iota
	// SortByY orders by bounds-center y coordinate.
	SortByY
	// SortByAngle orders by the angle from origin to the bounds center.
	SortByAngle
	// SortByDistance orders by the distance from origin to the bounds center.
	SortByDistance
)

// ShapeSort returns a sorted copy of the shape list; the input order is
// left untouched. Sorting is stable. An unknown method returns the copy
// unchanged.
func ShapeSort(shapes ShapeList, method SortMethod, origin Point) ShapeList {
	out := cloneShape(shapes).(ShapeList)

	var key func(Shape) float64
	switch method {
	case SortByX:
		key = func(s Shape) float64 { return Bounds(s).Center().X }
	case SortByY:
		key = func(s Shape) float64 { return Bounds(s).Center().Y }
	case SortByAngle:
		key = func(s Shape) float64 {
			c := Bounds(s).Center()
			return math.Atan2(c.Y-origin.Y, c.X-origin.X)
		}
	case SortByDistance:
		key = func(s Shape) float64 { return Bounds(s).Center().Distance(origin) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}

// PointOnPath returns the point at normalized arc-length parameter t along
// a shape's outline. t is taken modulo 1 with negative values wrapped.
// Groups and shape lists are first flattened into one combined path.
func PointOnPath(s Shape, t float64) Point {
	p := toSinglePath(s, false)
	if p == nil || p.IsEmpty() {
		return Point{}
	}
	return p.PointAt(t)
}

// toSinglePath reduces any shape to one combined path. Point lists become
// polyline contours, closed when closePoints is set. Returns nil for nil
// or path-free input.
func toSinglePath(s Shape, closePoints bool) *Path {
	switch v := s.(type) {
	case nil:
		return nil
	case *Path:
		return v.Clone()
	case PointList:
		if len(v) == 0 {
			return nil
		}
		p := NewPath()
		p.Polygon(v, closePoints)
		return p
	case ColorList:
		return nil
	default:
		paths := Ungroup(s)
		if len(paths) == 0 {
			return nil
		}
		out := paths[0]
		for _, q := range paths[1:] {
			out.Commands = append(out.Commands, q.Commands...)
		}
		return out
	}
}

// Orientation selects which edge pairs Link connects.
type Orientation int

const (
	// Horizontal links the facing vertical edges of the two bounds.
	Horizontal Orientation = iota
	// Vertical links the facing horizontal edges of the two bounds.
	Vertical
)

// Link builds a closed ribbon path connecting the facing edges of two
// shapes' bounding rects, with one cubic curve per side.
func Link(a, b Shape, orientation Orientation) *Path {
	if a == nil || b == nil {
		return nil
	}

	ra, rb := Bounds(a), Bounds(b)
	p := NewPath()

	if orientation == Horizontal {
		l, r := ra, rb
		if rb.Center().X < ra.Center().X {
			l, r = rb, ra
		}
		midX := (l.Right() + r.Left()) / 2
		p.MoveTo(l.Right(), l.Top())
		p.CubicTo(midX, l.Top(), midX, r.Top(), r.Left(), r.Top())
		p.LineTo(r.Left(), r.Bottom())
		p.CubicTo(midX, r.Bottom(), midX, l.Bottom(), l.Right(), l.Bottom())
		p.ClosePath()
		return p
	}

	t, btm := ra, rb
	if rb.Center().Y < ra.Center().Y {
		t, btm = rb, ra
	}
	midY := (t.Bottom() + btm.Top()) / 2
	p.MoveTo(t.Left(), t.Bottom())
	p.CubicTo(t.Left(), midY, btm.Left(), midY, btm.Left(), btm.Top())
	p.LineTo(btm.Right(), btm.Top())
	p.CubicTo(btm.Right(), midY, t.Right(), midY, t.Right(), t.Bottom())
	p.ClosePath()
	return p
}

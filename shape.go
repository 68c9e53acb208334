package vg

// Shape is the union every vg operation dispatches over. Its variants are:
//
//   - *Path: an ordered command sequence
//   - *Group: a tree of nested shapes
//   - PointList: bare vertices
//   - ShapeList: a flat heterogeneous collection
//   - ColorList: a color swatch list (recognized by Bounds; geometric
//     operations pass it through unchanged, colors are never transformed)
//
// A nil Shape given to any operation yields a nil result rather than an
// error: callers commonly chain operations on possibly-empty selections.
type Shape interface {
	isShape()
}

func (*Path) isShape()  {}
func (*Group) isShape() {}

// PointList is a bare list of vertices.
type PointList []Point

func (PointList) isShape() {}

// ShapeList is a flat ordered collection of shapes, typically the result of
// flattening variadic arguments.
type ShapeList []Shape

func (ShapeList) isShape() {}

// ColorList is a list of color swatches.
type ColorList []RGBA

func (ColorList) isShape() {}

// cloneShape deep-copies a shape so results never alias their inputs.
func cloneShape(s Shape) Shape {
	switch v := s.(type) {
	case nil:
		return nil
	case *Path:
		return v.Clone()
	case *Group:
		return v.Clone()
	case PointList:
		out := make(PointList, len(v))
		copy(out, v)
		return out
	case ShapeList:
		out := make(ShapeList, len(v))
		for i, child := range v {
			out[i] = cloneShape(child)
		}
		return out
	case ColorList:
		out := make(ColorList, len(v))
		copy(out, v)
		return out
	}
	return nil
}

// mapShapePoints rebuilds a shape with every coordinate passed through f,
// recursing through groups and lists and copying fill/stroke metadata
// forward. This is the single dispatch point behind the coordinate-level
// operations (transform, mirror, snap).
func mapShapePoints(s Shape, f func(Point) Point) Shape {
	switch v := s.(type) {
	case nil:
		return nil
	case *Path:
		return v.mapPoints(f)
	case *Group:
		out := &Group{Shapes: make([]Shape, 0, len(v.Shapes))}
		for _, child := range v.Shapes {
			out.Shapes = append(out.Shapes, mapShapePoints(child, f))
		}
		return out
	case PointList:
		out := make(PointList, len(v))
		for i, pt := range v {
			out[i] = f(pt)
		}
		return out
	case ShapeList:
		out := make(ShapeList, len(v))
		for i, child := range v {
			out[i] = mapShapePoints(child, f)
		}
		return out
	case ColorList:
		return cloneShape(v)
	}
	return nil
}

// swatchSize is the edge length of one color swatch in Bounds.
const swatchSize = 30

// Bounds computes the minimal axis-aligned rectangle enclosing the shape.
//
// A single point yields a zero-size rect at that point. A color list yields
// a fixed-size swatch strip (30 wide, 30 per color tall). An empty group or
// list yields the zero rect at the origin.
func Bounds(s Shape) Rect {
	switch v := s.(type) {
	case nil:
		return Rect{}
	case *Path:
		return v.boundingBox()
	case *Group:
		return boundsOf(v.Shapes)
	case PointList:
		if len(v) == 0 {
			return Rect{}
		}
		r := RectFromPoints(v[0], v[0])
		for _, pt := range v[1:] {
			r = r.UnitePoint(pt)
		}
		return r
	case ShapeList:
		return boundsOf(v)
	case ColorList:
		if len(v) == 0 {
			return Rect{}
		}
		return Rect{W: swatchSize, H: swatchSize * float64(len(v))}
	}
	return Rect{}
}

func boundsOf(shapes []Shape) Rect {
	var r Rect
	first := true
	for _, s := range shapes {
		if s == nil {
			continue
		}
		b := Bounds(s)
		if first {
			r = b
			first = false
			continue
		}
		r = r.Unite(b)
	}
	return r
}

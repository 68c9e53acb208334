package vg

import "math"

// Affine operations over the shape union. All angles are in degrees.

// TransformShape applies an arbitrary affine transform to a shape,
// returning a new shape with identical structure.
func TransformShape(s Shape, m Matrix) Shape {
	return mapShapePoints(s, m.TransformPoint)
}

// Translate moves a shape by (dx, dy).
func Translate(s Shape, dx, dy float64) Shape {
	return TransformShape(s, Translation(dx, dy))
}

// Scale scales a shape by (sx, sy) around an origin.
func Scale(s Shape, sx, sy float64, origin Point) Shape {
	return TransformShape(s, ScalingAbout(sx, sy, origin))
}

// Rotate rotates a shape by degrees around an origin.
func Rotate(s Shape, degrees float64, origin Point) Shape {
	return TransformShape(s, RotationAbout(radians(degrees), origin))
}

// Skew shears a shape by (degX, degY) around an origin.
func Skew(s Shape, degX, degY float64, origin Point) Shape {
	return TransformShape(s, ShearingAbout(math.Tan(radians(degX)), math.Tan(radians(degY)), origin))
}

// TransformOp selects one step of the per-duplicate transform order in Copy.
type TransformOp int

const (
	// OpTranslate accumulates the translation offset additively.
	OpTranslate TransformOp = iota
	// OpRotate accumulates the rotation angle additively.
	OpRotate
	// OpScale accumulates the scale as 1 + i*delta per axis.
	OpScale
)

// Copy produces copies transformed duplicates of a shape, returned as a
// Group. Duplicate i starts from a fresh identity transform and composes
// the steps of order in sequence: translation offset i*offset, rotation
// i*rotateDeg degrees, and per-axis scale 1 + i*scaleDelta. Rotation and
// scale pivot on the original shape's bounds center.
func Copy(s Shape, copies int, order []TransformOp, offset Point, rotateDeg float64, scaleDelta Point) Shape {
	if s == nil {
		return nil
	}
	if copies < 1 {
		copies = 1
	}

	center := Bounds(s).Center()
	out := &Group{Shapes: make([]Shape, 0, copies)}

	for i := 0; i < copies; i++ {
		fi := float64(i)
		m := Identity()
		// left-multiplying keeps the order sequence applied first-to-last
		for _, op := range order {
			switch op {
			case OpTranslate:
				m = Translation(fi*offset.X, fi*offset.Y).Multiply(m)
			case OpRotate:
				m = RotationAbout(radians(fi*rotateDeg), center).Multiply(m)
			case OpScale:
				m = ScalingAbout(1+fi*scaleDelta.X, 1+fi*scaleDelta.Y, center).Multiply(m)
			}
		}
		out.Shapes = append(out.Shapes, TransformShape(s, m))
	}
	return out
}

// Fit centers and scales a shape so its bounds fill a w-by-h box at
// position. With stretch false the scale is uniform (the smaller of the two
// axis ratios); a degenerate bounds axis leaves that axis unconstrained.
// With stretch true the axes scale independently and a degenerate axis
// defaults to scale 1.
func Fit(s Shape, position Point, w, h float64, stretch bool) Shape {
	if s == nil {
		return nil
	}

	b := Bounds(s)
	bw := clampSmall(b.W)
	bh := clampSmall(b.H)

	var sx, sy float64
	if stretch {
		sx, sy = 1, 1
		if bw != 0 {
			sx = w / bw
		}
		if bh != 0 {
			sy = h / bh
		}
	} else {
		rx, ry := math.Inf(1), math.Inf(1)
		if bw != 0 {
			rx = w / bw
		}
		if bh != 0 {
			ry = h / bh
		}
		scale := math.Min(rx, ry)
		if math.IsInf(scale, 1) {
			scale = 1
		}
		sx, sy = scale, scale
	}

	center := b.Center()
	m := ScalingAbout(sx, sy, position).
		Multiply(Translation(position.X-center.X, position.Y-center.Y))
	return TransformShape(s, m)
}

// FitTo fits a shape into the bounds of another shape, centered.
func FitTo(s, bounding Shape, stretch bool) Shape {
	if s == nil {
		return nil
	}
	b := Bounds(bounding)
	return Fit(s, b.Center(), b.W, b.H, stretch)
}

// Mirror reflects a shape across the line through origin at angleDeg
// degrees. Each coordinate is decomposed into distance and angle relative
// to origin, reflected, and recomposed. With keepOriginal true the result
// holds both shapes: concatenated for a bare point list, grouped otherwise.
func Mirror(s Shape, angleDeg float64, origin Point, keepOriginal bool) Shape {
	if s == nil {
		return nil
	}

	lineAngle := radians(angleDeg)
	reflect := func(p Point) Point {
		d := p.Distance(origin)
		a := math.Atan2(p.Y-origin.Y, p.X-origin.X)
		ra := 2*lineAngle - a
		return Point{
			X: origin.X + d*math.Cos(ra),
			Y: origin.Y + d*math.Sin(ra),
		}
	}

	mirrored := mapShapePoints(s, reflect)
	if !keepOriginal {
		return mirrored
	}

	if pts, ok := s.(PointList); ok {
		out := make(PointList, 0, 2*len(pts))
		out = append(out, pts...)
		out = append(out, mirrored.(PointList)...)
		return out
	}
	return NewGroup(cloneShape(s), mirrored)
}

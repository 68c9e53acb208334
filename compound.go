package vg

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
)

// Boolean compound operations between two shapes' outlines, built on a
// polygon clipping engine. Curved paths are approximated as polylines via
// uniform arc-length resampling before clipping; exact boolean algebra on
// curves is not attempted.

// BoolOp selects the boolean set operation applied by Compound.
type BoolOp int

const (
	// Union keeps the area covered by either shape.
	Union BoolOp = iota
	// Difference keeps the subject area not covered by the clip shape.
	Difference
	// Intersection keeps the area covered by both shapes.
	Intersection
	// Xor keeps the area covered by exactly one shape.
	Xor
)

const (
	// compoundSpacing is the resampling spacing: consecutive points are at
	// most one unit apart, trading curve fidelity for clip correctness.
	compoundSpacing = 1.0
	// compoundScale lifts coordinates into the clipping engine's preferred
	// fixed-point domain.
	compoundScale = 100.0
	// compoundCleanTol is the near-duplicate vertex tolerance, already
	// proportional to compoundScale.
	compoundCleanTol = 0.01 * compoundScale
)

// Compound applies a boolean set operation between two shapes, treating a
// as the subject and b as the clip. Both inputs are reduced to a single
// combined path, resampled to polylines, clipped with the nonzero fill
// rule, and reassembled as one path of closed polyline contours carrying
// the subject's fill/stroke attributes.
//
// A nil input yields a nil result; an unrecognized operation is an error.
func Compound(a, b Shape, op BoolOp) (*Path, error) {
	var pcOp polyclip.Op
	switch op {
	case Union:
		pcOp = polyclip.UNION
	case Difference:
		pcOp = polyclip.DIFFERENCE
	case Intersection:
		pcOp = polyclip.INTERSECTION
	case Xor:
		pcOp = polyclip.XOR
	default:
		return nil, fmt.Errorf("vg: unsupported boolean operation %d", int(op))
	}

	pa := toSinglePath(a, true)
	pb := toSinglePath(b, true)
	if pa == nil || pb == nil {
		return nil, nil
	}

	subject := toClipPolygon(pa)
	clip := toClipPolygon(pb)
	result := subject.Construct(pcOp, clip)

	Logger().Debug("vg: compound",
		"op", int(op),
		"subjectRings", len(subject),
		"clipRings", len(clip),
		"resultRings", len(result))

	out := NewPath()
	out.Fill = pa.Fill
	out.Stroke = pa.Stroke
	out.StrokeWidth = pa.StrokeWidth

	for _, contour := range result {
		pts := cleanRing(contour, compoundCleanTol)
		if len(pts) < 3 {
			continue
		}
		out.MoveTo(pts[0].X/compoundScale, pts[0].Y/compoundScale)
		for _, pt := range pts[1:] {
			out.LineTo(pt.X/compoundScale, pt.Y/compoundScale)
		}
		out.ClosePath()
	}
	return out, nil
}

// toClipPolygon resamples a path so consecutive points are at most one unit
// apart and lifts its contours into the clipping domain as closed rings.
func toClipPolygon(p *Path) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, c := range p.Resample(compoundSpacing).flattenContours(pointAtTolerance) {
		pts := c.points
		// drop an explicit closing duplicate; rings close implicitly
		if len(pts) > 1 && pts[0].Approx(pts[len(pts)-1], 1e-9) {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 3 {
			continue
		}
		ring := make(polyclip.Contour, 0, len(pts))
		for _, pt := range pts {
			ring = append(ring, polyclip.Point{
				X: pt.X * compoundScale,
				Y: pt.Y * compoundScale,
			})
		}
		poly = append(poly, ring)
	}
	return poly
}

// cleanRing removes near-duplicate consecutive vertices, including the
// wrap-around pair, at the given tolerance in the scaled domain.
func cleanRing(ring polyclip.Contour, tol float64) []Point {
	out := make([]Point, 0, len(ring))
	for _, pcp := range ring {
		pt := Point{X: pcp.X, Y: pcp.Y}
		if len(out) > 0 && out[len(out)-1].Distance(pt) < tol {
			continue
		}
		out = append(out, pt)
	}
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) < tol {
		out = out[:len(out)-1]
	}
	return out
}

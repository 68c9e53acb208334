package vg

// Rejection sampling of points inside a shape's outline.

const (
	// scatterSamplesPerCommand is the fixed tessellation density of the
	// parity-test rings: 5 points per original path command.
	scatterSamplesPerCommand = 5
	// scatterMaxAttempts bounds the placement attempts per point.
	scatterMaxAttempts = 100
)

// ScatterPoints samples up to amount points uniformly inside the shape's
// outline, using even-odd parity testing against contours resampled at a
// fixed 5 points per command. Each point gets at most 100 placement
// attempts before being dropped, so a shape with a low fill ratio relative
// to its bounds may yield fewer points than requested. This is deliberate
// best-effort sampling, not an error.
func ScatterPoints(s Shape, amount int, seed ...int64) PointList {
	if s == nil {
		return nil
	}

	rings := collectRings(s)
	if len(rings) == 0 {
		return nil
	}

	b := Bounds(s)
	rng := newRand(seed)

	out := make(PointList, 0, amount)
	for i := 0; i < amount; i++ {
		for attempt := 0; attempt < scatterMaxAttempts; attempt++ {
			pt := Point{
				X: b.X + rng.Float64()*b.W,
				Y: b.Y + rng.Float64()*b.H,
			}
			if containsParity(rings, pt) {
				out = append(out, pt)
				break
			}
		}
	}

	if len(out) < amount {
		Logger().Debug("vg: scatter under-delivered",
			"requested", amount, "placed", len(out))
	}
	return out
}

// collectRings gathers the parity-test rings for a shape: one sampled ring
// per path contour, plus any bare point list as a ring of its own.
func collectRings(s Shape) [][]Point {
	var rings [][]Point
	appendRings(s, &rings)
	return rings
}

func appendRings(s Shape, rings *[][]Point) {
	switch v := s.(type) {
	case *Path:
		*rings = append(*rings, v.sampleRings(scatterSamplesPerCommand)...)
	case PointList:
		if len(v) >= 3 {
			ring := make([]Point, len(v))
			copy(ring, v)
			*rings = append(*rings, ring)
		}
	case *Group:
		for _, child := range v.Shapes {
			appendRings(child, rings)
		}
	case ShapeList:
		for _, child := range v {
			appendRings(child, rings)
		}
	}
}

// containsParity reports whether pt is inside the rings under the even-odd
// rule, counting crossings of a horizontal ray over every ring edge
// (including each ring's closing edge).
func containsParity(rings [][]Point, pt Point) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		j := n - 1
		for i := 0; i < n; i++ {
			pi, pj := ring[i], ring[j]
			if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
				xCross := pi.X + (pt.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
				if pt.X < xCross {
					inside = !inside
				}
			}
			j = i
		}
	}
	return inside
}

package vg

import "math"

// Derived path operations: contour extraction, flattening, arc length,
// point-at-parameter and uniform resampling.

// Contours splits the path into one path per contour. A contour is a
// maximal run of commands from a MoveTo to the next MoveTo or Close.
// Each returned path carries the original fill/stroke attributes.
func (p *Path) Contours() []*Path {
	var result []*Path
	var current []Command

	flush := func() {
		if len(current) > 0 {
			result = append(result, p.withCommands(current))
			current = nil
		}
	}

	for _, c := range p.Commands {
		switch c.(type) {
		case MoveTo:
			flush()
			current = append(current, c)
		case Close:
			current = append(current, c)
			flush()
		default:
			current = append(current, c)
		}
	}
	flush()
	return result
}

// contourPolyline holds one flattened contour.
type contourPolyline struct {
	points []Point
	closed bool
}

// flattenContours converts each contour to a polyline with the given
// flattening tolerance (maximum distance from the true curve).
func (p *Path) flattenContours(tolerance float64) []contourPolyline {
	if tolerance <= 0 {
		tolerance = 0.1
	}

	var result []contourPolyline
	var cur contourPolyline
	var current, start Point

	emit := func(pt Point) {
		cur.points = append(cur.points, pt)
	}
	flush := func() {
		if len(cur.points) > 0 {
			result = append(result, cur)
		}
		cur = contourPolyline{}
	}

	for _, c := range p.Commands {
		switch e := c.(type) {
		case MoveTo:
			flush()
			emit(e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(NewQuadBez(current, e.Control, e.Point), tolerance*tolerance, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(NewCubicBez(current, e.Control1, e.Control2, e.Point), tolerance*tolerance, emit)
			current = e.Point
		case Close:
			if current != start {
				emit(start)
			}
			cur.closed = true
			current = start
			flush()
		}
	}
	flush()
	return result
}

// Flatten converts the path to line-segment points with the given tolerance.
func (p *Path) Flatten(tolerance float64) []Point {
	var points []Point
	for _, c := range p.flattenContours(tolerance) {
		points = append(points, c.points...)
	}
	return points
}

// flattenQuad recursively subdivides the quadratic until flat.
func flattenQuad(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	// Flatness test: distance from control point to chord midpoint
	mid := q.P0.Lerp(q.P2, 0.5)
	dist := q.P1.Sub(mid)
	if dist.LengthSquared() <= toleranceSq {
		fn(q.P2)
		return
	}

	q1, q2 := q.Subdivide()
	flattenQuad(q1, toleranceSq, fn)
	flattenQuad(q2, toleranceSq, fn)
}

// flattenCubic recursively subdivides the cubic until flat.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		fn(c.P3)
		return
	}

	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}

// Length returns the total arc length of the path.
// accuracy controls the precision of the approximation (smaller = more
// accurate); pass 0 for the default.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}

	var length float64
	var current, start Point

	for _, c := range p.Commands {
		switch e := c.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case QuadTo:
			length += NewQuadBez(current, e.Control, e.Point).Length(accuracy)
			current = e.Point
		case CubicTo:
			length += NewCubicBez(current, e.Control1, e.Control2, e.Point).Length(accuracy)
			current = e.Point
		case Close:
			length += current.Distance(start)
			current = start
		}
	}

	return length
}

// pointAtTolerance is the flattening tolerance backing PointAt and Resample.
const pointAtTolerance = 0.01

// PointAt returns the point at normalized arc-length parameter t along the
// path. t is taken modulo 1, with negative values wrapped into [0, 1).
// Contour gaps contribute no length: t moves along drawn geometry only.
func (p *Path) PointAt(t float64) Point {
	t = math.Mod(t, 1)
	if t < 0 {
		t += 1
	}

	contours := p.flattenContours(pointAtTolerance)
	var total float64
	for _, c := range contours {
		total += polylineLength(c.points)
	}
	if total == 0 {
		if pt, ok := firstEndpoint(p.Commands); ok {
			return pt
		}
		return Point{}
	}

	target := t * total
	for _, c := range contours {
		pts := c.points
		for i := 1; i < len(pts); i++ {
			d := pts[i-1].Distance(pts[i])
			if target <= d {
				if d == 0 {
					return pts[i]
				}
				return pts[i-1].Lerp(pts[i], target/d)
			}
			target -= d
		}
	}

	// t ~= 1 lands on the final point
	last := contours[len(contours)-1].points
	return last[len(last)-1]
}

// Resample returns a new path whose contours are uniform polylines with
// consecutive points at most spacing apart (uniform arc-length resampling).
// Curves are approximated as polylines; closed contours stay closed.
func (p *Path) Resample(spacing float64) *Path {
	if spacing <= 0 {
		spacing = 1
	}

	var cmds []Command
	for _, c := range p.flattenContours(pointAtTolerance) {
		pts := resamplePolyline(c.points, spacing, c.closed)
		if len(pts) == 0 {
			continue
		}
		cmds = append(cmds, MoveTo{Point: pts[0]})
		for _, pt := range pts[1:] {
			cmds = append(cmds, LineTo{Point: pt})
		}
		if c.closed {
			cmds = append(cmds, Close{})
		}
	}
	return p.withCommands(cmds)
}

// resamplePolyline walks the polyline emitting evenly spaced points.
// For closed polylines the duplicated final point is dropped.
func resamplePolyline(pts []Point, spacing float64, closed bool) []Point {
	if len(pts) < 2 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}

	total := polylineLength(pts)
	if total == 0 {
		return []Point{pts[0]}
	}

	n := int(math.Ceil(total / spacing))
	step := total / float64(n)

	out := make([]Point, 0, n+1)
	out = append(out, pts[0])

	seg := 1
	segStart := 0.0
	segLen := pts[0].Distance(pts[1])
	for i := 1; i <= n; i++ {
		target := float64(i) * step
		for target > segStart+segLen && seg < len(pts)-1 {
			segStart += segLen
			seg++
			segLen = pts[seg-1].Distance(pts[seg])
		}
		var pt Point
		if segLen == 0 {
			pt = pts[seg]
		} else {
			pt = pts[seg-1].Lerp(pts[seg], (target-segStart)/segLen)
		}
		out = append(out, pt)
	}

	if closed && len(out) > 1 && out[0].Approx(out[len(out)-1], 1e-9) {
		out = out[:len(out)-1]
	}
	return out
}

func polylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

func firstEndpoint(cmds []Command) (Point, bool) {
	for _, c := range cmds {
		if pt, ok := endPoint(c); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// sampleRings samples each contour at n uniform parameter steps per command,
// returning one closed point ring per contour. Used by the scatter
// point-in-polygon parity test, which needs a fixed tessellation density
// rather than an adaptive one.
func (p *Path) sampleRings(n int) [][]Point {
	if n < 1 {
		n = 1
	}

	var rings [][]Point
	var ring []Point
	var current, start Point

	flush := func() {
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
		ring = nil
	}

	for _, c := range p.Commands {
		switch e := c.(type) {
		case MoveTo:
			flush()
			ring = append(ring, e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			l := NewLine(current, e.Point)
			for i := 1; i <= n; i++ {
				ring = append(ring, l.Eval(float64(i)/float64(n)))
			}
			current = e.Point
		case QuadTo:
			q := NewQuadBez(current, e.Control, e.Point)
			for i := 1; i <= n; i++ {
				ring = append(ring, q.Eval(float64(i)/float64(n)))
			}
			current = e.Point
		case CubicTo:
			b := NewCubicBez(current, e.Control1, e.Control2, e.Point)
			for i := 1; i <= n; i++ {
				ring = append(ring, b.Eval(float64(i)/float64(n)))
			}
			current = e.Point
		case Close:
			current = start
			flush()
		}
	}
	flush()
	return rings
}

// boundingBox returns the tight axis-aligned bounding box of the path,
// using curve extrema for accuracy. An empty path yields the zero Rect.
func (p *Path) boundingBox() Rect {
	var bbox Rect
	var current Point
	first := true

	expand := func(r Rect) {
		if first {
			bbox = r
			first = false
			return
		}
		bbox = bbox.Unite(r)
	}

	for _, c := range p.Commands {
		switch e := c.(type) {
		case MoveTo:
			expand(RectFromPoints(e.Point, e.Point))
			current = e.Point
		case LineTo:
			expand(RectFromPoints(e.Point, e.Point))
			current = e.Point
		case QuadTo:
			expand(NewQuadBez(current, e.Control, e.Point).BoundingBox())
			current = e.Point
		case CubicTo:
			expand(NewCubicBez(current, e.Control1, e.Control2, e.Point).BoundingBox())
			current = e.Point
		case Close:
			// adds no new points
		}
	}

	return bbox
}

package vg

import "math"

// Path represents a vector path: an ordered sequence of drawing commands
// describing one or more contours, plus fill and stroke attributes.
type Path struct {
	Commands    []Command
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64

	start   Point // starting point of current contour
	current Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		Commands: make([]Command, 0, 16),
	}
}

// MoveTo starts a new contour at (x, y) without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.Commands = append(p.Commands, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.Commands = append(p.Commands, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Commands = append(p.Commands, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ClosePath closes the current contour by connecting back to its start point.
func (p *Path) ClosePath() {
	p.Commands = append(p.Commands, Close{})
	p.current = p.start
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clone creates a deep copy of the path, including fill/stroke attributes.
func (p *Path) Clone() *Path {
	result := &Path{
		Commands:    make([]Command, len(p.Commands)),
		Fill:        p.Fill,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
		start:       p.start,
		current:     p.current,
	}
	copy(result.Commands, p.Commands)
	return result
}

// withCommands creates a path carrying p's fill/stroke attributes but a new
// command sequence. Library operations use it to copy metadata forward.
func (p *Path) withCommands(cmds []Command) *Path {
	result := &Path{
		Commands:    cmds,
		Fill:        p.Fill,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
	}
	if pt, ok := lastEndpoint(cmds); ok {
		result.current = pt
	}
	if len(cmds) > 0 {
		if m, ok := cmds[0].(MoveTo); ok {
			result.start = m.Point
		}
	}
	return result
}

// mapPoints returns a new path with every coordinate passed through f.
func (p *Path) mapPoints(f func(Point) Point) *Path {
	cmds := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		cmds[i] = mapCommand(c, f)
	}
	return p.withCommands(cmds)
}

// Transform returns a new path with the affine transform applied to every
// coordinate.
func (p *Path) Transform(m Matrix) *Path {
	return p.mapPoints(m.TransformPoint)
}

func lastEndpoint(cmds []Command) (Point, bool) {
	for i := len(cmds) - 1; i >= 0; i-- {
		if pt, ok := endPoint(cmds[i]); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// -------------------------------------------------------------------
// Shape constructors
// -------------------------------------------------------------------

// Rectangle adds a rectangle contour to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Circle adds a circle contour using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse contour using cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Magic constant for circle approximation with cubic Beziers:
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.ClosePath()
}

// Arc adds a circular arc from angle1 to angle2 (in radians) around
// center (cx, cy).
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into cubic Bezier segments of at most 90 degrees
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		a2 := a1 + angleStep
		p.arcSegment(cx, cy, r, a1, a2)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.Commands) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// RoundedRectangle adds a rectangle contour with rounded corners.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.ClosePath()
}

// RegularPolygon adds a regular polygon contour with n sides, circumradius r
// and a rotation offset in radians.
func (p *Path) RegularPolygon(n int, cx, cy, r, rotation float64) {
	angle := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		px := cx + r*math.Cos(a)
		py := cy + r*math.Sin(a)
		if i == 0 {
			p.MoveTo(px, py)
		} else {
			p.LineTo(px, py)
		}
	}
	p.ClosePath()
}

// Polygon adds a polyline contour through the given points, optionally
// closing it.
func (p *Path) Polygon(points []Point, closed bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.ClosePath()
	}
}

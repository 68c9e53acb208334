package vg

import "fmt"

// Command represents a single drawing command in a path.
// The concrete variants are MoveTo, LineTo, QuadTo, CubicTo and Close.
type Command interface {
	isCommand()
}

// MoveTo starts a new contour at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isCommand() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isCommand() {}

// QuadTo draws a quadratic Bezier curve with one control point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isCommand() {}

// CubicTo draws a cubic Bezier curve with two control points.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isCommand() {}

// Close closes the current contour.
type Close struct{}

func (Close) isCommand() {}

// endPoint returns the endpoint of a command. Close has no endpoint.
func endPoint(c Command) (Point, bool) {
	switch e := c.(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case QuadTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	case Close:
		return Point{}, false
	}
	panic(fmt.Sprintf("vg: unknown path command %T", c))
}

// mapCommand returns a copy of the command with every coordinate (endpoint
// and control points) passed through f. An unknown command variant is
// malformed shape data and aborts the traversal.
func mapCommand(c Command, f func(Point) Point) Command {
	switch e := c.(type) {
	case MoveTo:
		return MoveTo{Point: f(e.Point)}
	case LineTo:
		return LineTo{Point: f(e.Point)}
	case QuadTo:
		return QuadTo{Control: f(e.Control), Point: f(e.Point)}
	case CubicTo:
		return CubicTo{Control1: f(e.Control1), Control2: f(e.Control2), Point: f(e.Point)}
	case Close:
		return Close{}
	}
	panic(fmt.Sprintf("vg: unknown path command %T", c))
}

// asMoveTo retags a command as the MoveTo opening a contour, keeping its
// endpoint and discarding any control points.
func asMoveTo(c Command) Command {
	p, ok := endPoint(c)
	if !ok {
		return c
	}
	return MoveTo{Point: p}
}

package vg

import (
	"errors"
	"fmt"
)

// Scope selects what Delete removes: individual vertices or whole sub-paths.
type Scope string

const (
	// ScopePoints removes individual vertices.
	ScopePoints Scope = "points"
	// ScopePaths removes whole sub-paths (contours).
	ScopePaths Scope = "paths"
)

// ErrInvalidScope reports an unrecognized Delete scope. Unlike a missing
// shape, a bad scope is invalid API usage and fails loudly.
var ErrInvalidScope = errors.New("invalid scope")

// Delete removes geometry falling inside bounds (or outside, when invert is
// set). With ScopePoints individual vertices are filtered and the first
// surviving command of each contour is retagged as a MoveTo; a contour left
// without vertices disappears. With ScopePaths a whole contour is removed
// when any of its vertices falls inside bounds. Points on the rect boundary
// count as inside in both scopes.
func Delete(s Shape, bounds Rect, scope Scope, invert bool) (Shape, error) {
	switch scope {
	case ScopePoints, ScopePaths:
	default:
		return nil, fmt.Errorf("vg: %w %q", ErrInvalidScope, string(scope))
	}
	if s == nil {
		return nil, nil
	}
	return deleteShape(s, bounds, scope, invert), nil
}

func deleteShape(s Shape, bounds Rect, scope Scope, invert bool) Shape {
	switch v := s.(type) {
	case *Path:
		return deleteFromPath(v, bounds, scope, invert)
	case PointList:
		return deleteFromPoints(v, bounds, scope, invert)
	case *Group:
		out := &Group{}
		for _, child := range v.Shapes {
			if kept := deleteShape(child, bounds, scope, invert); !isEmptyShape(kept) {
				out.Shapes = append(out.Shapes, kept)
			}
		}
		return out
	case ShapeList:
		out := ShapeList{}
		for _, child := range v {
			if kept := deleteShape(child, bounds, scope, invert); !isEmptyShape(kept) {
				out = append(out, kept)
			}
		}
		return out
	}
	return cloneShape(s)
}

func deleteFromPath(p *Path, bounds Rect, scope Scope, invert bool) *Path {
	var cmds []Command

	for _, contour := range p.Contours() {
		if scope == ScopePaths {
			hit := false
			for _, c := range contour.Commands {
				if pt, ok := endPoint(c); ok && bounds.Contains(pt) {
					hit = true
					break
				}
			}
			if hit != invert {
				continue
			}
			cmds = append(cmds, contour.Commands...)
			continue
		}

		// ScopePoints: keep a vertex iff its containment matches invert
		var kept []Command
		closed := false
		for _, c := range contour.Commands {
			if _, isClose := c.(Close); isClose {
				closed = true
				continue
			}
			pt, ok := endPoint(c)
			if !ok {
				continue
			}
			if bounds.Contains(pt) == invert {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			continue
		}
		// a contour must open with a MoveTo
		kept[0] = asMoveTo(kept[0])
		cmds = append(cmds, kept...)
		if closed {
			cmds = append(cmds, Close{})
		}
	}

	return p.withCommands(cmds)
}

func deleteFromPoints(pts PointList, bounds Rect, scope Scope, invert bool) PointList {
	if scope == ScopePaths {
		// the whole list is one sub-path
		for _, pt := range pts {
			if bounds.Contains(pt) != invert {
				return PointList{}
			}
		}
		return cloneShape(pts).(PointList)
	}

	out := PointList{}
	for _, pt := range pts {
		if bounds.Contains(pt) == invert {
			out = append(out, pt)
		}
	}
	return out
}

// isEmptyShape reports whether a delete result carries no geometry and
// should be dropped from its parent.
func isEmptyShape(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Path:
		return v.IsEmpty()
	case *Group:
		return len(v.Shapes) == 0
	case PointList:
		return len(v) == 0
	case ShapeList:
		return len(v) == 0
	}
	return false
}

package vg

import "math/rand"

// Seeded jitter operations at three granularities: per vertex, per contour
// and per leaf path. Offsets are uniform in [-offset, +offset] per axis.
// The traversal order over groups is depth-first, so a given seed always
// produces the same jitter for the same shape structure.

// WigglePoints jitters every vertex independently. A vertex's control
// points move with it by the same offset, preserving curve continuity.
func WigglePoints(s Shape, offset Point, seed ...int64) Shape {
	if s == nil {
		return nil
	}
	return wigglePoints(s, offset, newRand(seed))
}

func wigglePoints(s Shape, offset Point, rng *rand.Rand) Shape {
	switch v := s.(type) {
	case *Path:
		cmds := make([]Command, len(v.Commands))
		for i, c := range v.Commands {
			d := jitter(rng, offset)
			cmds[i] = mapCommand(c, func(p Point) Point { return p.Add(d) })
		}
		return v.withCommands(cmds)
	case PointList:
		out := make(PointList, len(v))
		for i, pt := range v {
			out[i] = pt.Add(jitter(rng, offset))
		}
		return out
	case *Group:
		out := &Group{Shapes: make([]Shape, 0, len(v.Shapes))}
		for _, child := range v.Shapes {
			out.Shapes = append(out.Shapes, wigglePoints(child, offset, rng))
		}
		return out
	case ShapeList:
		out := make(ShapeList, len(v))
		for i, child := range v {
			out[i] = wigglePoints(child, offset, rng)
		}
		return out
	}
	return cloneShape(s)
}

// WiggleContours applies one shared random translation per sub-contour.
// A bare point list counts as a single contour.
func WiggleContours(s Shape, offset Point, seed ...int64) Shape {
	if s == nil {
		return nil
	}
	return wiggleContours(s, offset, newRand(seed))
}

func wiggleContours(s Shape, offset Point, rng *rand.Rand) Shape {
	switch v := s.(type) {
	case *Path:
		var cmds []Command
		for _, contour := range v.Contours() {
			d := jitter(rng, offset)
			for _, c := range contour.Commands {
				cmds = append(cmds, mapCommand(c, func(p Point) Point { return p.Add(d) }))
			}
		}
		return v.withCommands(cmds)
	case PointList:
		d := jitter(rng, offset)
		out := make(PointList, len(v))
		for i, pt := range v {
			out[i] = pt.Add(d)
		}
		return out
	case *Group:
		out := &Group{Shapes: make([]Shape, 0, len(v.Shapes))}
		for _, child := range v.Shapes {
			out.Shapes = append(out.Shapes, wiggleContours(child, offset, rng))
		}
		return out
	case ShapeList:
		out := make(ShapeList, len(v))
		for i, child := range v {
			out[i] = wiggleContours(child, offset, rng)
		}
		return out
	}
	return cloneShape(s)
}

// WigglePaths applies one shared random translation per leaf path inside a
// group or shape list. A bare path (or point list) given directly is left
// untouched.
func WigglePaths(s Shape, offset Point, seed ...int64) Shape {
	if s == nil {
		return nil
	}
	switch s.(type) {
	case *Path, PointList, ColorList:
		return cloneShape(s)
	}
	return wigglePaths(s, offset, newRand(seed))
}

func wigglePaths(s Shape, offset Point, rng *rand.Rand) Shape {
	switch v := s.(type) {
	case *Path:
		d := jitter(rng, offset)
		return v.mapPoints(func(p Point) Point { return p.Add(d) })
	case PointList:
		d := jitter(rng, offset)
		out := make(PointList, len(v))
		for i, pt := range v {
			out[i] = pt.Add(d)
		}
		return out
	case *Group:
		out := &Group{Shapes: make([]Shape, 0, len(v.Shapes))}
		for _, child := range v.Shapes {
			out.Shapes = append(out.Shapes, wigglePaths(child, offset, rng))
		}
		return out
	case ShapeList:
		out := make(ShapeList, len(v))
		for i, child := range v {
			out[i] = wigglePaths(child, offset, rng)
		}
		return out
	}
	return cloneShape(s)
}

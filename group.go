package vg

// Group is a tree node holding an ordered list of child shapes.
// A group exclusively owns its children: operations always rebuild a new
// group with new children, so no child is ever shared across results.
type Group struct {
	Shapes []Shape
}

// NewGroup creates a group from the given shapes. Nil shapes are skipped.
func NewGroup(shapes ...Shape) *Group {
	g := &Group{Shapes: make([]Shape, 0, len(shapes))}
	for _, s := range shapes {
		if s != nil {
			g.Shapes = append(g.Shapes, s)
		}
	}
	return g
}

// Clone creates a deep copy of the group and all its descendants.
func (g *Group) Clone() *Group {
	out := &Group{Shapes: make([]Shape, 0, len(g.Shapes))}
	for _, s := range g.Shapes {
		out.Shapes = append(out.Shapes, cloneShape(s))
	}
	return out
}

// Ungroup recursively flattens a shape into its Path leaves in depth-first
// order, discarding group structure. Point lists and color lists are not
// paths and do not appear in the result. The returned paths are copies.
func Ungroup(s Shape) []*Path {
	var out []*Path
	collectPaths(s, &out)
	return out
}

func collectPaths(s Shape, out *[]*Path) {
	switch v := s.(type) {
	case nil:
	case *Path:
		*out = append(*out, v.Clone())
	case *Group:
		for _, child := range v.Shapes {
			collectPaths(child, out)
		}
	case ShapeList:
		for _, child := range v {
			collectPaths(child, out)
		}
	}
}

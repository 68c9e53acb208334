// Package vg is a renderer-agnostic 2D vector-geometry library for
// procedural and creative-coding work.
//
// # Overview
//
// vg models shapes as a closed union of five variants: a Path (an ordered
// sequence of drawing commands), a Group (a tree of nested shapes), a
// PointList (bare vertices), a ShapeList (a flat heterogeneous collection),
// and a ColorList (a swatch strip). Every operation in the package accepts
// any of these
// variants, recurses where needed, and returns a freshly constructed
// shape. Inputs are never mutated.
//
// # Quick Start
//
//	import "github.com/vf-ui-ar/vg"
//
//	p := vg.NewPath()
//	p.Circle(0, 0, 50)
//
//	// All operations are functional: they return new shapes.
//	ring := vg.Rotate(vg.Copy(p, 6, []vg.TransformOp{vg.OpTranslate, vg.OpRotate},
//		vg.Pt(120, 0), 60, vg.ZP), 15, vg.ZP)
//
//	dots := vg.ScatterPoints(ring, 200, 42)
//
// # Shape Union
//
// A nil shape passed to any operation yields a nil result rather than an
// error; callers commonly chain operations on possibly-empty selections.
// Structurally invalid input (an unknown path command, an invalid delete
// scope, an unsupported boolean operation) fails loudly instead.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Public operation angles in degrees; Matrix works in radians
//
// # Randomness
//
// Wiggle and scatter operations take an optional seed. A given seed always
// reproduces the same output. When the seed is omitted, a process-wide seed
// is drawn once; output is then stable within a process but not across runs.
package vg

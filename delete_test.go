package vg

import (
	"errors"
	"testing"
)

func TestDeleteInvalidScope(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	_, err := Delete(p, R(0, 0, 5, 5), Scope("bogus-scope"), false)
	if err == nil {
		t.Fatal("Delete with an unknown scope should fail")
	}
	if !errors.Is(err, ErrInvalidScope) {
		t.Errorf("error = %v, want ErrInvalidScope", err)
	}
}

func TestDeletePointsComplementary(t *testing.T) {
	rect := R(0, 0, 10, 10)
	// includes strictly-inside, strictly-outside and boundary-touching points
	pts := PointList{
		Pt(5, 5),   // inside
		Pt(0, 0),   // corner: boundary counts as inside
		Pt(10, 5),  // edge: boundary counts as inside
		Pt(15, 5),  // outside
		Pt(-1, -1), // outside
		Pt(10.001, 10), // just outside
	}

	removed, err := Delete(pts, rect, ScopePoints, false)
	if err != nil {
		t.Fatal(err)
	}
	kept, err := Delete(pts, rect, ScopePoints, true)
	if err != nil {
		t.Fatal(err)
	}

	outside := removed.(PointList)
	inside := kept.(PointList)

	if len(outside)+len(inside) != len(pts) {
		t.Fatalf("partition sizes %d + %d != %d", len(outside), len(inside), len(pts))
	}

	wantInside := PointList{Pt(5, 5), Pt(0, 0), Pt(10, 5)}
	if len(inside) != len(wantInside) {
		t.Fatalf("inside partition = %v, want %v", inside, wantInside)
	}
	for i := range wantInside {
		if inside[i] != wantInside[i] {
			t.Errorf("inside[%d] = %+v, want %+v", i, inside[i], wantInside[i])
		}
	}
}

func TestDeletePointsRetagsMoveTo(t *testing.T) {
	// deleting the contour's opening vertex must retag the survivor as MoveTo
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(20, 20)
	p.ClosePath()

	out, err := Delete(p, R(-1, -1, 2, 2), ScopePoints, false)
	if err != nil {
		t.Fatal(err)
	}
	path := out.(*Path)
	if len(path.Commands) != 3 { // MoveTo, LineTo, Close
		t.Fatalf("got %d commands, want 3: %#v", len(path.Commands), path.Commands)
	}
	m, ok := path.Commands[0].(MoveTo)
	if !ok {
		t.Fatalf("first command is %T, want MoveTo", path.Commands[0])
	}
	if m.Point != Pt(20, 0) {
		t.Errorf("retagged MoveTo at %+v, want (20, 0)", m.Point)
	}
	if _, ok := path.Commands[2].(Close); !ok {
		t.Errorf("closed contour lost its Close")
	}
}

func TestDeletePathsScope(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)    // touches the delete rect
	p.Rectangle(100, 100, 5, 5)  // far away

	out, err := Delete(p, R(-5, -5, 10, 10), ScopePaths, false)
	if err != nil {
		t.Fatal(err)
	}
	contours := out.(*Path).Contours()
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if b := contours[0].boundingBox(); !rectApprox(b, R(100, 100, 5, 5), 1e-9) {
		t.Errorf("surviving contour bounds = %+v, want (100,100,5,5)", b)
	}

	// inverted: keep only contours touching the rect
	out, err = Delete(p, R(-5, -5, 10, 10), ScopePaths, true)
	if err != nil {
		t.Fatal(err)
	}
	contours = out.(*Path).Contours()
	if len(contours) != 1 {
		t.Fatalf("inverted: got %d contours, want 1", len(contours))
	}
	if b := contours[0].boundingBox(); !rectApprox(b, R(0, 0, 10, 10), 1e-9) {
		t.Errorf("inverted surviving contour bounds = %+v", b)
	}
}

func TestDeleteGroupDropsEmptied(t *testing.T) {
	a := NewPath()
	a.Rectangle(0, 0, 4, 4)
	b := NewPath()
	b.Rectangle(100, 100, 4, 4)

	out, err := Delete(NewGroup(a, b), R(-10, -10, 50, 50), ScopePaths, false)
	if err != nil {
		t.Fatal(err)
	}
	g := out.(*Group)
	if len(g.Shapes) != 1 {
		t.Fatalf("group has %d children after delete, want 1", len(g.Shapes))
	}
}

package vg

import (
	"math"
	"testing"
)

func TestTranslateComposition(t *testing.T) {
	// translate(translate(S, d1), d2) == translate(S, d1+d2)
	p := NewPath()
	p.MoveTo(1, 2)
	p.QuadraticTo(3, 4, 5, 6)
	p.ClosePath()

	twice := Translate(Translate(p, 3, -1), -7, 4).(*Path)
	once := Translate(p, -4, 3).(*Path)

	if len(twice.Commands) != len(once.Commands) {
		t.Fatalf("command counts differ: %d vs %d", len(twice.Commands), len(once.Commands))
	}
	for i := range twice.Commands {
		a, aok := endPoint(twice.Commands[i])
		b, bok := endPoint(once.Commands[i])
		if aok != bok || (aok && !a.Approx(b, 1e-9)) {
			t.Errorf("command %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestMirrorInvolution(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		origin Point
	}{
		{"horizontal axis", 0, ZP},
		{"vertical axis", 90, ZP},
		{"diagonal", 45, ZP},
		{"arbitrary", 33.7, Pt(5, -2)},
	}

	src := PointList{Pt(1, 2), Pt(-3, 4), Pt(0.5, -7)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := Mirror(Mirror(src, tt.angle, tt.origin, false), tt.angle, tt.origin, false).(PointList)
			for i := range src {
				if !back[i].Approx(src[i], 1e-9) {
					t.Errorf("point %d: %+v, want %+v", i, back[i], src[i])
				}
			}
		})
	}
}

func TestMirrorAxisAligned(t *testing.T) {
	// reflection across the vertical line through the origin flips x
	got := Mirror(PointList{Pt(3, 4)}, 90, ZP, false).(PointList)
	if !got[0].Approx(Pt(-3, 4), 1e-9) {
		t.Errorf("mirror across vertical = %+v, want (-3, 4)", got[0])
	}

	// reflection across the horizontal line flips y
	got = Mirror(PointList{Pt(3, 4)}, 0, ZP, false).(PointList)
	if !got[0].Approx(Pt(3, -4), 1e-9) {
		t.Errorf("mirror across horizontal = %+v, want (3, -4)", got[0])
	}
}

func TestMirrorKeepOriginal(t *testing.T) {
	pts := PointList{Pt(1, 0), Pt(2, 0)}
	both := Mirror(pts, 90, ZP, true).(PointList)
	if len(both) != 4 {
		t.Fatalf("keepOriginal point list has %d points, want 4", len(both))
	}

	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	g, ok := Mirror(p, 90, ZP, true).(*Group)
	if !ok {
		t.Fatal("keepOriginal on a path should return a group")
	}
	if len(g.Shapes) != 2 {
		t.Fatalf("group has %d children, want 2", len(g.Shapes))
	}
}

func TestFitPreservesAspect(t *testing.T) {
	p := NewPath()
	p.Rectangle(3, 7, 40, 20) // aspect ratio 2:1

	pos := Pt(100, 50)
	fitted := Fit(p, pos, 30, 30, false)
	b := Bounds(fitted)

	if math.Abs(b.W/b.H-2) > 1e-9 {
		t.Errorf("aspect ratio = %v, want 2", b.W/b.H)
	}
	if !b.Center().Approx(pos, 1e-9) {
		t.Errorf("center = %+v, want %+v", b.Center(), pos)
	}
	// the limiting axis fills the box
	if math.Abs(b.W-30) > 1e-9 {
		t.Errorf("width = %v, want 30", b.W)
	}
}

func TestFitStretch(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 40, 20)

	b := Bounds(Fit(p, Pt(0, 0), 10, 30, true))
	if math.Abs(b.W-10) > 1e-9 || math.Abs(b.H-30) > 1e-9 {
		t.Errorf("stretched bounds = %+v, want 10x30", b)
	}
}

func TestFitDegenerateAxis(t *testing.T) {
	// a horizontal segment has zero height; fit must not divide by zero
	line := PointList{Pt(0, 0), Pt(10, 0)}

	b := Bounds(Fit(line, Pt(5, 5), 20, 20, false))
	if math.Abs(b.W-20) > 1e-9 {
		t.Errorf("degenerate fit width = %v, want 20", b.W)
	}

	b = Bounds(Fit(line, Pt(5, 5), 20, 20, true))
	if math.Abs(b.W-20) > 1e-9 {
		t.Errorf("degenerate stretch fit width = %v, want 20", b.W)
	}
}

func TestFitTo(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 4, 4)
	box := NewPath()
	box.Rectangle(10, 10, 8, 8)

	b := Bounds(FitTo(p, box, false))
	if !rectApprox(b, R(10, 10, 8, 8), 1e-9) {
		t.Errorf("FitTo bounds = %+v, want (10,10,8,8)", b)
	}
}

func TestCopy(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 2, 2)

	g, ok := Copy(p, 3, []TransformOp{OpTranslate}, Pt(10, 0), 0, ZP).(*Group)
	if !ok {
		t.Fatal("Copy should return a group")
	}
	if len(g.Shapes) != 3 {
		t.Fatalf("Copy produced %d shapes, want 3", len(g.Shapes))
	}

	// duplicate i is offset by i*translate
	for i, child := range g.Shapes {
		b := Bounds(child)
		want := Pt(1+float64(i)*10, 1)
		if !b.Center().Approx(want, 1e-9) {
			t.Errorf("duplicate %d center = %+v, want %+v", i, b.Center(), want)
		}
	}
}

func TestCopyScaleAccumulates(t *testing.T) {
	p := NewPath()
	p.Rectangle(-1, -1, 2, 2)

	g := Copy(p, 3, []TransformOp{OpScale}, ZP, 0, Pt(0.5, 0.5)).(*Group)

	// duplicate i has scale 1 + i*0.5
	for i, child := range g.Shapes {
		b := Bounds(child)
		want := 2 * (1 + float64(i)*0.5)
		if math.Abs(b.W-want) > 1e-9 {
			t.Errorf("duplicate %d width = %v, want %v", i, b.W, want)
		}
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	got := Rotate(PointList{Pt(2, 1)}, 180, Pt(1, 1)).(PointList)
	if !got[0].Approx(Pt(0, 1), 1e-9) {
		t.Errorf("rotate 180 about (1,1) = %+v, want (0,1)", got[0])
	}
}

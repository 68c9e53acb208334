package vg

import (
	"math"
	"testing"
)

func TestAlign(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 10, 4, 6)

	tests := []struct {
		name string
		h    HAlign
		v    VAlign
		want Rect
	}{
		{"left top", HLeft, VTop, R(0, 0, 4, 6)},
		{"center middle", HCenter, VMiddle, R(-2, -3, 4, 6)},
		{"right bottom", HRight, VBottom, R(-4, -6, 4, 6)},
		{"horizontal only", HLeft, VNone, R(0, 10, 4, 6)},
		{"vertical only", HNone, VTop, R(10, 0, 4, 6)},
		{"no-op", HNone, VNone, R(10, 10, 4, 6)},
		{"unknown values are a no-op", HAlign(99), VAlign(99), R(10, 10, 4, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(Align(p, ZP, tt.h, tt.v))
			if !rectApprox(got, tt.want, 1e-9) {
				t.Errorf("Align bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	pts := PointList{Pt(1.2, 4.7), Pt(-2.6, 0.4)}

	full := Snap(pts, 1, 1).(PointList)
	want := PointList{Pt(1, 5), Pt(-3, 0)}
	for i := range want {
		if !full[i].Approx(want[i], 1e-9) {
			t.Errorf("full snap point %d = %+v, want %+v", i, full[i], want[i])
		}
	}

	// strength 0 leaves coordinates unchanged
	none := Snap(pts, 1, 0).(PointList)
	for i := range pts {
		if !none[i].Approx(pts[i], 1e-9) {
			t.Errorf("zero-strength snap moved point %d to %+v", i, none[i])
		}
	}

	// half strength is the midpoint between original and snapped
	half := Snap(PointList{Pt(1.2, 0)}, 1, 0.5).(PointList)
	if !half[0].Approx(Pt(1.1, 0), 1e-9) {
		t.Errorf("half snap = %+v, want (1.1, 0)", half[0])
	}

	// snapping relative to a center offset
	centered := Snap(PointList{Pt(1.4, 0)}, 1, 1, Pt(0.5, 0.5)).(PointList)
	if !centered[0].Approx(Pt(1.5, -0.5), 1e-9) {
		t.Errorf("centered snap = %+v, want (1.5, -0.5)", centered[0])
	}
}

func TestSnapIdempotent(t *testing.T) {
	// snap at strength 1 applied twice equals snap applied once
	pts := PointList{Pt(1.23, -4.56), Pt(7.89, 0.12), Pt(-0.5, 2.5)}
	once := Snap(pts, 2, 1).(PointList)
	twice := Snap(once, 2, 1).(PointList)
	for i := range once {
		if !twice[i].Approx(once[i], 1e-12) {
			t.Errorf("point %d: snap not idempotent: %+v vs %+v", i, twice[i], once[i])
		}
	}
}

func TestShapeSort(t *testing.T) {
	a := NewPath()
	a.Rectangle(20, 0, 2, 2)
	b := NewPath()
	b.Rectangle(0, 10, 2, 2)
	c := NewPath()
	c.Rectangle(10, 5, 2, 2)
	shapes := ShapeList{a, b, c}

	centersX := func(list ShapeList) []float64 {
		var out []float64
		for _, s := range list {
			out = append(out, Bounds(s).Center().X)
		}
		return out
	}

	byX := ShapeSort(shapes, SortByX, ZP)
	if xs := centersX(byX); !(xs[0] < xs[1] && xs[1] < xs[2]) {
		t.Errorf("SortByX order = %v", xs)
	}

	byDist := ShapeSort(shapes, SortByDistance, ZP)
	prev := -1.0
	for _, s := range byDist {
		d := Bounds(s).Center().Distance(ZP)
		if d < prev {
			t.Errorf("SortByDistance not ascending: %v after %v", d, prev)
		}
		prev = d
	}

	// input order must be untouched
	if Bounds(shapes[0]).Center().X != 21 {
		t.Error("ShapeSort mutated its input")
	}

	// unknown method returns the copy unchanged
	same := ShapeSort(shapes, SortMethod(42), ZP)
	for i := range shapes {
		if Bounds(same[i]).Center() != Bounds(shapes[i]).Center() {
			t.Errorf("unknown method reordered element %d", i)
		}
	}
}

func TestPointOnPathGroup(t *testing.T) {
	// two segments of equal length: t=0.75 lands midway along the second
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(10, 0)
	b := NewPath()
	b.MoveTo(0, 10)
	b.LineTo(10, 10)

	got := PointOnPath(NewGroup(a, b), 0.75)
	if !got.Approx(Pt(5, 10), 1e-6) {
		t.Errorf("PointOnPath(group, 0.75) = %+v, want (5, 10)", got)
	}
}

func TestLinkHorizontal(t *testing.T) {
	a := NewPath()
	a.Rectangle(0, 0, 10, 10)
	b := NewPath()
	b.Rectangle(30, 2, 10, 6)

	ribbon := Link(a, b, Horizontal)
	if ribbon == nil || ribbon.IsEmpty() {
		t.Fatal("Link returned an empty path")
	}

	bounds := ribbon.boundingBox()
	if math.Abs(bounds.Left()-10) > 1e-9 || math.Abs(bounds.Right()-30) > 1e-9 {
		t.Errorf("ribbon spans x [%v, %v], want [10, 30]", bounds.Left(), bounds.Right())
	}

	// one cubic per side
	cubics := 0
	for _, c := range ribbon.Commands {
		if _, ok := c.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != 2 {
		t.Errorf("ribbon has %d cubics, want 2", cubics)
	}

	// argument order must not matter for the connected edges
	flipped := Link(b, a, Horizontal)
	if !rectApprox(flipped.boundingBox(), bounds, 1e-9) {
		t.Errorf("flipped ribbon bounds = %+v, want %+v", flipped.boundingBox(), bounds)
	}
}

func TestLinkVertical(t *testing.T) {
	a := NewPath()
	a.Rectangle(0, 0, 10, 10)
	b := NewPath()
	b.Rectangle(2, 30, 6, 10)

	bounds := Link(a, b, Vertical).boundingBox()
	if math.Abs(bounds.Top()-10) > 1e-9 || math.Abs(bounds.Bottom()-30) > 1e-9 {
		t.Errorf("ribbon spans y [%v, %v], want [10, 30]", bounds.Top(), bounds.Bottom())
	}
}

package vg

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, -1)), Pt(4, 1)},
		{"sub", Pt(1, 2).Sub(Pt(3, -1)), Pt(-2, 3)},
		{"mul", Pt(1.5, -2).Mul(2), Pt(3, -4)},
		{"div", Pt(3, -4).Div(2), Pt(1.5, -2)},
		{"lerp half", Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10)},
		{"lerp zero", Pt(3, 4).Lerp(Pt(10, 20), 0), Pt(3, 4)},
		{"normalize", Pt(3, 4).Normalize(), Pt(0.6, 0.8)},
		{"normalize zero", ZP.Normalize(), ZP},
		{"rotate quarter", Pt(1, 0).Rotate(math.Pi / 2), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, 1e-12) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestPointScalars(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if c := Pt(1, 0).Cross(Pt(0, 1)); c != 1 {
		t.Errorf("Cross = %v, want 1", c)
	}
	if d := Pt(2, 3).Dot(Pt(4, 5)); d != 23 {
		t.Errorf("Dot = %v, want 23", d)
	}
	if a := Pt(0, 1).Atan2(); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("Atan2 = %v, want pi/2", a)
	}
}

func TestRect(t *testing.T) {
	r := R(0, 0, 4, 3)

	if got := r.Center(); got != Pt(2, 1.5) {
		t.Errorf("Center = %+v, want (2, 1.5)", got)
	}

	u := r.Unite(R(10, 10, 2, 2))
	if u != R(0, 0, 12, 12) {
		t.Errorf("Unite = %+v, want (0,0,12,12)", u)
	}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(2, 2), true},
		{"corner", Pt(0, 0), true},
		{"right edge", Pt(4, 1), true},
		{"bottom edge", Pt(2, 3), true},
		{"outside right", Pt(4.001, 1), false},
		{"outside above", Pt(2, -0.001), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Pt(5, 1), Pt(2, 4))
	if r != R(2, 1, 3, 3) {
		t.Errorf("RectFromPoints = %+v, want (2,1,3,3)", r)
	}
}

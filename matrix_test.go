package vg

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translation(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scale", Scaling(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotation(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate about", RotationAbout(math.Pi, Pt(1, 1)), Pt(2, 1), Pt(0, 1)},
		{"scale about", ScalingAbout(2, 2, Pt(1, 1)), Pt(2, 1), Pt(3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("TransformPoint = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translation(3, 4).Multiply(Rotation(0.7)).Multiply(Scaling(2, 0.5))
	p := Pt(5, -2)
	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if !back.Approx(p, 1e-9) {
		t.Errorf("Invert round trip = %+v, want %+v", back, p)
	}

	if !(Matrix{}).Invert().IsIdentity() {
		t.Error("inverting a singular matrix should return the identity")
	}
}

package gamemath

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := Vec{3, 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %f, want 1", v.Length())
	}

	zero := Vec{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("normalizing zero vector = %+v, want zero", zero)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name      string
		angle     float64
		magnitude float64
		want      Vec
	}{
		{"east", 0, 2, Vec{2, 0}},
		{"north", math.Pi / 2, 3, Vec{0, 3}},
		{"negative magnitude flips", 0, -2, Vec{-2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAngle(tt.angle, tt.magnitude)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("FromAngle(%f, %f) = %+v, want %+v", tt.angle, tt.magnitude, got, tt.want)
			}
		})
	}
}

func TestDot(t *testing.T) {
	if d := (Vec{1, 0}).Dot(Vec{0, 1}); d != 0 {
		t.Errorf("perpendicular dot = %f, want 0", d)
	}
	if d := (Vec{2, 3}).Dot(Vec{4, 5}); d != 23 {
		t.Errorf("dot = %f, want 23", d)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec{0, math.Inf(1)}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}

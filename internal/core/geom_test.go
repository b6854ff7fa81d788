package core

import (
	"math"
	"testing"
)

func TestVec3Dist(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same point", Vec3{1, 2, 3}, Vec3{1, 2, 3}, 0},
		{"unit x", Vec3{}, Vec3{X: 1}, 1},
		{"pythagorean", Vec3{}, Vec3{X: 3, Z: 4}, 5},
		{"with height", Vec3{Y: 1}, Vec3{X: 2, Y: 3, Z: 2}, 2 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		got := tt.a.Dist(tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Dist() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	sum := a.Add(b)
	if sum != (Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Errorf("Add() = %+v", sum)
	}

	if diff := sum.Sub(b); diff != a {
		t.Errorf("Sub() should invert Add, got %+v", diff)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.25, 0.3, 2.0); got != 0.3 {
		t.Errorf("ClampF below range = %v, want 0.3", got)
	}
	if got := ClampF(2.5, 0.3, 2.0); got != 2.0 {
		t.Errorf("ClampF above range = %v, want 2.0", got)
	}
	if got := ClampF(1.0, 0.3, 2.0); got != 1.0 {
		t.Errorf("ClampF inside range = %v, want 1.0", got)
	}
}

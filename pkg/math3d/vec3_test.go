package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"unit x", V3(5, 0, 0), V3(1, 0, 0)},
		{"diagonal", V3(1, 1, 0), V3(1/math.Sqrt2, 1/math.Sqrt2, 0)},
		{"zero falls back to up", Zero3(), Up()},
		{"tiny falls back to up", V3(1e-4, 0, 0), Up()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if !got.ApproxEqual(V3(0, 0, 1), eps) {
		t.Errorf("x cross y = %v, want +z", got)
	}
}

func TestVec3AngleTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same", V3(0, 1, 0), V3(0, 2, 0), 0},
		{"orthogonal", V3(1, 0, 0), V3(0, 0, 1), math.Pi / 2},
		{"opposite", V3(1, 0, 0), V3(-3, 0, 0), math.Pi},
		{"degenerate a", Zero3(), V3(1, 0, 0), 0},
		{"degenerate b", V3(1, 0, 0), V3(0.01, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.AngleTo(tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("AngleTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(2, 4, 6)
	if got := a.Lerp(b, 0.5); !got.ApproxEqual(V3(1, 2, 3), eps) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 2); !got.ApproxEqual(b, eps) {
		t.Errorf("Lerp clamps t above 1, got %v", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range handling")
	}
	if got := Lerp(0.3, 1, 0.5); math.Abs(got-0.65) > eps {
		t.Errorf("Lerp = %v, want 0.65", got)
	}
	if Smoothstep(0, 1, -1) != 0 || Smoothstep(0, 1, 2) != 1 {
		t.Error("Smoothstep should saturate outside the edges")
	}
	if got := RadToDeg(DegToRad(45)); math.Abs(got-45) > eps {
		t.Errorf("deg/rad round trip = %v", got)
	}
}

package sphere

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/taigrr/planet/pkg/math3d"
)

func TestFibonacciUnitLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 50, 500} {
		points := Fibonacci(n)
		if len(points) != n {
			t.Fatalf("Fibonacci(%d) returned %d points", n, len(points))
		}
		for i, p := range points {
			if math.Abs(p.Len()-1) > 1e-3 {
				t.Errorf("Fibonacci(%d)[%d] has length %v", n, i, p.Len())
			}
		}
	}
}

func TestFibonacciEdgeCounts(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []math3d.Vec3
	}{
		{"negative", -3, []math3d.Vec3{}},
		{"zero", 0, []math3d.Vec3{}},
		{"one", 1, []math3d.Vec3{math3d.Up()}},
		{"two poles", 2, []math3d.Vec3{math3d.V3(0, 1, 0), math3d.V3(0, -1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fibonacci(tt.count)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Fibonacci(%d) mismatch (-want +got):\n%s", tt.count, diff)
			}
		})
	}
}

func TestFibonacciDeterministic(t *testing.T) {
	if diff := cmp.Diff(Fibonacci(42), Fibonacci(42)); diff != "" {
		t.Errorf("repeated calls differ:\n%s", diff)
	}
}

func TestFibonacciTopToBottom(t *testing.T) {
	points := Fibonacci(10)
	for i := 1; i < len(points); i++ {
		if points[i].Y >= points[i-1].Y {
			t.Errorf("point %d y=%v not below point %d y=%v", i, points[i].Y, i-1, points[i-1].Y)
		}
	}
	if points[0].Y != 1 || points[9].Y != -1 {
		t.Errorf("poles = %v, %v", points[0].Y, points[9].Y)
	}
}

func TestCustomLayout(t *testing.T) {
	l := CustomLayout{Points: []math3d.Vec3{
		math3d.V3(2, 0, 0),
		math3d.V3(0, 0, 0),
	}}

	got := l.Positions(4)
	want := []math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.Up(),
		math3d.Up(),
		math3d.Up(),
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}

	if got := l.Positions(1); len(got) != 1 {
		t.Errorf("Positions(1) returned %d points", len(got))
	}
}

func TestFibonacciLayout(t *testing.T) {
	var l Layout = FibonacciLayout{}
	if diff := cmp.Diff(Fibonacci(12), l.Positions(12)); diff != "" {
		t.Errorf("FibonacciLayout differs from Fibonacci:\n%s", diff)
	}
}

func BenchmarkFibonacci(b *testing.B) {
	for b.Loop() {
		_ = Fibonacci(1000)
	}
}

// Package sphere generates label anchor points on the unit sphere and
// measures how evenly they are spread.
package sphere

import (
	"math"

	"github.com/taigrr/planet/pkg/math3d"
)

// GoldenAngle is the azimuthal step between consecutive Fibonacci points.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Fibonacci returns count points spread over the unit sphere from the north
// pole (y = 1) to the south pole (y = -1), each turned by GoldenAngle from
// the last. The result depends on count alone.
func Fibonacci(count int) []math3d.Vec3 {
	if count <= 0 {
		return []math3d.Vec3{}
	}
	if count == 1 {
		return []math3d.Vec3{math3d.Up()}
	}

	points := make([]math3d.Vec3, count)
	last := float64(count - 1)
	for i := range count {
		y := 1 - (float64(i)/last)*2
		radius := math.Sqrt(math.Max(0, 1-y*y))
		sin, cos := math.Sincos(GoldenAngle * float64(i))
		points[i] = math3d.V3(cos*radius, y, sin*radius)
	}
	return points
}

// Custom projects arbitrary anchor vectors onto the unit sphere. Degenerate
// vectors land on the north pole.
func Custom(points []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Normalize()
	}
	return out
}

// Layout supplies one unit-sphere position per label, in label order.
type Layout interface {
	Positions(count int) []math3d.Vec3
}

// FibonacciLayout places labels with Fibonacci.
type FibonacciLayout struct{}

// Positions implements Layout.
func (FibonacciLayout) Positions(count int) []math3d.Vec3 {
	return Fibonacci(count)
}

// CustomLayout places labels on caller-chosen anchors. Labels beyond the
// supplied anchors sit on the north pole.
type CustomLayout struct {
	Points []math3d.Vec3
}

// Positions implements Layout.
func (l CustomLayout) Positions(count int) []math3d.Vec3 {
	if count <= 0 {
		return []math3d.Vec3{}
	}

	n := min(count, len(l.Points))
	out := make([]math3d.Vec3, count)
	copy(out, Custom(l.Points[:n]))
	for i := n; i < count; i++ {
		out[i] = math3d.Up()
	}
	return out
}

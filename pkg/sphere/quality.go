package sphere

import (
	"math"

	"github.com/taigrr/planet/pkg/math3d"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinPairwiseDistance returns the smallest distance between any two points.
// It checks all pairs and returns 0 for fewer than two points.
func MinPairwiseDistance(points []math3d.Vec3) float64 {
	if len(points) < 2 {
		return 0
	}

	best := math.Inf(1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Distance(points[j]); d < best {
				best = d
			}
		}
	}
	return best
}

// TheoreticalMinDistance estimates the best achievable minimum spacing of
// count points on the unit sphere, 2*sqrt(pi/count).
func TheoreticalMinDistance(count int) float64 {
	if count <= 0 {
		return 0
	}
	return 2 * math.Sqrt(math.Pi/float64(count))
}

// Efficiency is the minimum pairwise distance relative to
// TheoreticalMinDistance, capped at 1. Sets of zero or one point score 1.
func Efficiency(points []math3d.Vec3) float64 {
	if len(points) <= 1 {
		return 1
	}
	return math.Min(MinPairwiseDistance(points)/TheoreticalMinDistance(len(points)), 1)
}

// Report summarizes the spacing of a point set.
type Report struct {
	Count         int
	MinDistance   float64
	Optimum       float64
	Efficiency    float64
	NearestMean   float64
	NearestStdDev float64
	NearestMax    float64
}

// Analyze computes a Report. Nearest-neighbour statistics are zero for
// fewer than two points.
func Analyze(points []math3d.Vec3) Report {
	r := Report{
		Count:      len(points),
		Optimum:    TheoreticalMinDistance(len(points)),
		Efficiency: Efficiency(points),
	}
	if len(points) < 2 {
		return r
	}

	nearest := nearestDistances(points)
	r.MinDistance = floats.Min(nearest)
	r.NearestMax = floats.Max(nearest)
	r.NearestMean, r.NearestStdDev = stat.MeanStdDev(nearest, nil)
	return r
}

func nearestDistances(points []math3d.Vec3) []float64 {
	out := make([]float64, len(points))
	for i := range points {
		best := math.Inf(1)
		for j := range points {
			if i == j {
				continue
			}
			best = math.Min(best, points[i].Distance(points[j]))
		}
		out[i] = best
	}
	return out
}

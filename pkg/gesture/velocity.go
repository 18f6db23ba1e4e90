package gesture

import "github.com/taigrr/planet/pkg/math3d"

// DefaultVelocityWindow is how far back, in seconds, a VelocityTracker
// looks when estimating release velocity.
const DefaultVelocityWindow = 0.1

// VelocityTracker estimates pointer velocity from timestamped positions for
// hosts whose input layer reports only positions.
type VelocityTracker struct {
	// Window is the look-back span in seconds. Zero means
	// DefaultVelocityWindow.
	Window float64

	samples []sample
}

type sample struct {
	t   float64
	pos math3d.Vec2
}

// Add records the pointer at (x, y) at time t seconds. Samples older than
// the window are dropped.
func (v *VelocityTracker) Add(t, x, y float64) {
	v.samples = append(v.samples, sample{t: t, pos: math3d.V2(x, y)})

	cutoff := t - v.window()
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].t < cutoff {
		drop++
	}
	v.samples = v.samples[drop:]
}

// Velocity returns the mean velocity across the window in points per
// second, or zero with fewer than two samples.
func (v *VelocityTracker) Velocity() math3d.Vec2 {
	if len(v.samples) < 2 {
		return math3d.Vec2{}
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.t - first.t
	if dt <= 0 {
		return math3d.Vec2{}
	}
	return last.pos.Sub(first.pos).Scale(1 / dt)
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

func (v *VelocityTracker) window() float64 {
	if v.Window > 0 {
		return v.Window
	}
	return DefaultVelocityWindow
}

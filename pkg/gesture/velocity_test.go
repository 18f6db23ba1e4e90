package gesture

import (
	"math"
	"testing"
)

func TestVelocityTracker(t *testing.T) {
	var v VelocityTracker

	if got := v.Velocity(); got.Len() != 0 {
		t.Errorf("empty tracker velocity = %v", got)
	}

	v.Add(0, 0, 0)
	v.Add(0.05, 50, 0)
	v.Add(0.1, 100, -20)

	got := v.Velocity()
	if math.Abs(got.X-1000) > 1e-9 || math.Abs(got.Y+200) > 1e-9 {
		t.Errorf("Velocity = %v, want (1000, -200)", got)
	}
}

func TestVelocityTrackerDropsOldSamples(t *testing.T) {
	v := VelocityTracker{Window: 0.1}
	v.Add(0, 0, 0)
	v.Add(1, 500, 0)
	v.Add(1.05, 510, 0)

	got := v.Velocity()
	if math.Abs(got.X-200) > 1e-9 {
		t.Errorf("Velocity.X = %v, want 200 from recent samples only", got.X)
	}
}

func TestVelocityTrackerReset(t *testing.T) {
	var v VelocityTracker
	v.Add(0, 0, 0)
	v.Add(0.01, 10, 10)
	v.Reset()
	if got := v.Velocity(); got.Len() != 0 {
		t.Errorf("Velocity after Reset = %v", got)
	}
}

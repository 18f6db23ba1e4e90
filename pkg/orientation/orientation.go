// Package orientation holds the rotation and zoom of a sphere.
package orientation

import (
	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
)

// State is the authoritative rotation and scale of one sphere. The rotation
// is always unit length and the scale always lies in the scale range.
// State is not safe for concurrent use.
type State struct {
	rotation   math3d.Quat
	scale      float64
	scaleRange config.Range
}

// New returns an identity orientation with the given scale, clamped to
// scaleRange.
func New(scale float64, scaleRange config.Range) *State {
	return &State{
		rotation:   math3d.QuatIdentity(),
		scale:      scaleRange.Clamp(scale),
		scaleRange: scaleRange,
	}
}

// Rotation returns the current rotation.
func (s *State) Rotation() math3d.Quat { return s.rotation }

// Scale returns the current scale.
func (s *State) Scale() float64 { return s.scale }

// ScaleRange returns the allowed scale interval.
func (s *State) ScaleRange() config.Range { return s.scaleRange }

// SetRotation stores q, normalizing it first unless it is already unit
// length.
func (s *State) SetRotation(q math3d.Quat) {
	s.rotation = q.Unit()
}

// Compose applies delta on top of the current rotation.
func (s *State) Compose(delta math3d.Quat) {
	s.SetRotation(delta.Mul(s.rotation))
}

// SetScale clamps and stores v.
func (s *State) SetScale(v float64) {
	s.scale = s.scaleRange.Clamp(v)
}

// SetScaleRange replaces the allowed interval and re-clamps the scale.
func (s *State) SetScaleRange(r config.Range) {
	s.scaleRange = r
	s.scale = r.Clamp(s.scale)
}

// Reset returns the rotation to identity. When resetScale is set the scale
// is also restored to defaultScale.
func (s *State) Reset(resetScale bool, defaultScale float64) {
	s.rotation = math3d.QuatIdentity()
	if resetScale {
		s.SetScale(defaultScale)
	}
}

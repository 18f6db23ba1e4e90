// Package gesture turns 2D drag and pinch input into sphere rotations and
// zoom using a trackball model.
package gesture

import (
	"math"

	"github.com/taigrr/planet/pkg/animation"
	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/orientation"
)

// minAngle is the smallest drag rotation worth applying.
const minAngle = 1e-3

// Mapper applies gestures to an orientation and hands off to the animation
// engine when they end. Calls must be serialized with Engine.Tick.
type Mapper struct {
	state  *orientation.State
	engine *animation.Engine
	cfg    config.Config

	panning  bool
	pinching bool
}

// NewMapper returns a Mapper driving state through engine.
func NewMapper(state *orientation.State, engine *animation.Engine, cfg config.Config) *Mapper {
	return &Mapper{state: state, engine: engine, cfg: cfg}
}

// Configure swaps in new tuning values.
func (m *Mapper) Configure(cfg config.Config) {
	m.cfg = cfg
}

// Active reports whether a pan or pinch is in progress.
func (m *Mapper) Active() bool { return m.panning || m.pinching }

// PanBegin starts a drag and stops whatever the engine was running. It
// reports false when gestures are disabled.
func (m *Mapper) PanBegin() bool {
	if !m.cfg.Gesture.Enabled {
		return false
	}
	m.engine.BeginInteraction()
	m.panning = true
	return true
}

// PanDelta rotates by the drag (dx, dy) since the previous sample, in screen
// points with y growing downward. It begins a pan if none is active and
// reports whether a rotation was applied.
func (m *Mapper) PanDelta(dx, dy float64) bool {
	if !m.panning && !m.PanBegin() {
		return false
	}

	axis, angle := Trackball(dx, dy, m.cfg.Gesture.Sensitivity)
	if angle <= minAngle {
		return false
	}

	m.state.Compose(math3d.QuatFromAxisAngle(axis, angle))
	m.engine.RememberDirection(axis, angle)
	return true
}

// PanEnd finishes a drag released at (vx, vy) points per second. Fast
// releases coast with inertia; slow ones resume auto-rotation.
func (m *Mapper) PanEnd(vx, vy float64) {
	if !m.panning {
		return
	}
	m.panning = false
	if m.pinching {
		return
	}
	m.engine.EndInteraction()

	in := m.cfg.Inertia
	if in.Enabled && math.Hypot(vx, vy) > in.MinimumVelocity {
		m.engine.StartInertia(math3d.V2(vx, vy).Scale(m.cfg.Gesture.VelocityScale))
		return
	}
	m.engine.StartAutoRotation()
}

// PinchBegin starts a pinch. It reports false when gestures or scaling are
// disabled.
func (m *Mapper) PinchBegin() bool {
	if !m.cfg.Gesture.Enabled || !m.cfg.Scaling.Enabled {
		return false
	}
	m.engine.BeginInteraction()
	m.pinching = true
	return true
}

// Pinch multiplies the scale by the incremental factor since the previous
// sample. It begins a pinch if none is active.
func (m *Mapper) Pinch(factor float64) {
	if !m.pinching && !m.PinchBegin() {
		return
	}
	if factor <= 0 {
		return
	}
	m.state.SetScale(m.state.Scale() * factor * m.cfg.Scaling.PinchSensitivity)
}

// PinchEnd finishes a pinch and resumes auto-rotation.
func (m *Mapper) PinchEnd() {
	if !m.pinching {
		return
	}
	m.pinching = false
	if m.panning {
		return
	}
	m.engine.EndInteraction()
	m.engine.StartAutoRotation()
}

// Trackball maps a drag to a rotation axis perpendicular to it, in the
// screen plane, and an angle proportional to its length.
func Trackball(dx, dy, sensitivity float64) (axis math3d.Vec3, angle float64) {
	return math3d.V3(dy, dx, 0).Normalize(), math.Hypot(dx, dy) * sensitivity
}

// Package animation advances a sphere's orientation over time. An Engine
// runs exactly one task at a time: idle, auto-rotation, inertial coasting,
// or a timed transition toward a target rotation and scale.
package animation

import (
	"math"

	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/orientation"
)

// Mode names the running task.
type Mode int

const (
	Idle Mode = iota
	AutoRotation
	Inertia
	Transition
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case AutoRotation:
		return "auto-rotation"
	case Inertia:
		return "inertia"
	case Transition:
		return "transition"
	}
	return "unknown"
}

// minAngle is the smallest per-frame angle worth applying.
const minAngle = 1e-3

type task interface {
	mode() Mode
}

type idleTask struct{}

type autoRotationTask struct{}

type inertiaTask struct {
	velocity math3d.Vec2
}

type transitionTask struct {
	startRotation, targetRotation math3d.Quat
	startScale, targetScale       float64
	start, duration               float64
	handle                        *Handle
}

func (idleTask) mode() Mode         { return Idle }
func (autoRotationTask) mode() Mode { return AutoRotation }
func (*inertiaTask) mode() Mode     { return Inertia }
func (*transitionTask) mode() Mode  { return Transition }

// Engine drives an orientation.State from per-frame ticks. It is not safe
// for concurrent use; ticks and gesture calls must be serialized.
type Engine struct {
	state *orientation.State
	cfg   config.Config

	task        task
	axis        math3d.Vec3
	speed       float64
	clock       float64
	interacting bool
	paused      bool
}

// NewEngine returns an idle engine driving state. Call StartAutoRotation to
// begin drifting.
func NewEngine(state *orientation.State, cfg config.Config) *Engine {
	e := &Engine{
		state: state,
		task:  idleTask{},
	}
	e.Configure(cfg)
	return e
}

// Configure swaps in new tuning values. The auto-rotation axis and speed are
// reset to the configured ones; a running auto-rotation stops if it is now
// disabled.
func (e *Engine) Configure(cfg config.Config) {
	e.cfg = cfg
	e.axis = cfg.AutoRotation.Axis.Normalize()
	e.speed = cfg.AutoRotation.SpeedRange.Clamp(cfg.AutoRotation.Speed)
	if e.Mode() == AutoRotation && !cfg.AutoRotation.Enabled {
		e.task = idleTask{}
	}
}

// Mode reports the running task.
func (e *Engine) Mode() Mode { return e.task.mode() }

// IsAnimating reports whether any task other than Idle is running.
func (e *Engine) IsAnimating() bool { return e.Mode() != Idle }

// Interacting reports whether a gesture is in progress.
func (e *Engine) Interacting() bool { return e.interacting }

// Clock returns the total elapsed time fed through Tick, in seconds.
func (e *Engine) Clock() float64 { return e.clock }

// AutoRotationParams returns the current drift axis and per-frame speed.
func (e *Engine) AutoRotationParams() (axis math3d.Vec3, speed float64) {
	return e.axis, e.speed
}

// SetAutoRotationSpeed sets the drift speed, clamped to the speed range.
func (e *Engine) SetAutoRotationSpeed(speed float64) {
	e.speed = e.cfg.AutoRotation.SpeedRange.Clamp(speed)
}

// SetAutoRotationAxis sets the drift axis. The axis is normalized.
func (e *Engine) SetAutoRotationAxis(axis math3d.Vec3) {
	e.axis = axis.Normalize()
}

// RememberDirection retargets the drift along axis, with a speed scaled by
// how large angle is relative to the gesture sensitivity. It is a no-op
// unless direction memory is enabled.
func (e *Engine) RememberDirection(axis math3d.Vec3, angle float64) {
	if !e.cfg.AutoRotation.RememberDirection {
		return
	}
	g := e.cfg.Gesture
	factor := g.SpeedFactor.Clamp(angle / g.Sensitivity / g.DirectionDivisor)

	e.axis = axis.Normalize()
	e.speed = e.cfg.AutoRotation.SpeedRange.Clamp(e.cfg.AutoRotation.Speed * factor)
}

// BeginInteraction stops the running task for the duration of a gesture.
func (e *Engine) BeginInteraction() {
	e.Stop()
	e.interacting = true
}

// EndInteraction marks the gesture finished. The caller decides what runs
// next, usually StartInertia or StartAutoRotation.
func (e *Engine) EndInteraction() {
	e.interacting = false
}

// SetPaused holds auto-rotation off until it is called with false. Gestures
// and transitions still run while paused but settle to Idle. Pausing stops a
// running drift.
func (e *Engine) SetPaused(paused bool) {
	e.paused = paused
	if paused && e.Mode() == AutoRotation {
		e.task = idleTask{}
	}
}

// Paused reports whether auto-rotation is held off.
func (e *Engine) Paused() bool { return e.paused }

// CanAutoRotate reports whether auto-rotation is enabled, not paused, and no
// gesture is in progress.
func (e *Engine) CanAutoRotate() bool {
	return e.cfg.AutoRotation.Enabled && !e.paused && !e.interacting
}

// StartAutoRotation switches to drifting when CanAutoRotate allows it and
// reports whether it did.
func (e *Engine) StartAutoRotation() bool {
	if !e.CanAutoRotate() {
		return false
	}
	e.replace(autoRotationTask{})
	return true
}

// StartInertia coasts with velocity, in radians per reference frame, until
// the decayed speed drops below the stop threshold.
func (e *Engine) StartInertia(velocity math3d.Vec2) {
	e.replace(&inertiaTask{velocity: velocity})
}

// AnimateTo transitions to rotation and scale over duration seconds. Any
// running task is replaced, and a pending transition is cancelled without
// its callback. A non-positive duration completes on the next tick.
// onComplete may be nil.
func (e *Engine) AnimateTo(rotation math3d.Quat, scale, duration float64, onComplete func()) *Handle {
	h := newHandle(onComplete)
	e.replace(&transitionTask{
		startRotation:  e.state.Rotation(),
		targetRotation: rotation.Unit(),
		startScale:     e.state.Scale(),
		targetScale:    e.state.ScaleRange().Clamp(scale),
		start:          e.clock,
		duration:       duration,
		handle:         h,
	})
	return h
}

// Stop cancels the running task and goes idle.
func (e *Engine) Stop() {
	e.replace(idleTask{})
}

func (e *Engine) replace(t task) {
	if old, ok := e.task.(*transitionTask); ok {
		old.handle.Cancel()
	}
	e.task = t
}

// settle picks the resting task once inertia or a transition ends.
func (e *Engine) settle() {
	e.task = idleTask{}
	e.StartAutoRotation()
}

// Tick advances the running task by dt seconds of real elapsed time.
// Negative dt is treated as zero.
func (e *Engine) Tick(dt float64) {
	dt = math.Max(dt, 0)
	e.clock += dt
	frames := dt * e.cfg.ReferenceFPS

	switch t := e.task.(type) {
	case idleTask:
	case autoRotationTask:
		if !e.CanAutoRotate() {
			e.task = idleTask{}
			return
		}
		e.state.Compose(math3d.QuatFromAxisAngle(e.axis, e.speed*frames))
	case *inertiaTask:
		e.tickInertia(t, frames)
	case *transitionTask:
		e.tickTransition(t)
	}
}

func (e *Engine) tickInertia(t *inertiaTask, frames float64) {
	angle := t.velocity.Len()
	if angle > minAngle {
		axis := math3d.V3(t.velocity.Y, t.velocity.X, 0).Normalize()
		e.state.Compose(math3d.QuatFromAxisAngle(axis, angle*frames))
		e.RememberDirection(axis, angle)
	}

	t.velocity = t.velocity.Scale(math.Pow(e.cfg.Inertia.DecayRate, frames))
	if t.velocity.Len() < e.cfg.Inertia.StopThreshold {
		e.settle()
	}
}

func (e *Engine) tickTransition(t *transitionTask) {
	if t.handle.Status() == Cancelled {
		e.settle()
		return
	}

	progress := 1.0
	if t.duration > 0 {
		progress = math3d.Clamp((e.clock-t.start)/t.duration, 0, 1)
	}

	if progress < 1 {
		e.state.SetRotation(t.startRotation.Slerp(t.targetRotation, progress))
		e.state.SetScale(math3d.Lerp(t.startScale, t.targetScale, progress))
		return
	}

	e.state.SetRotation(t.targetRotation)
	e.state.SetScale(t.targetScale)
	e.settle()
	t.handle.complete()
}

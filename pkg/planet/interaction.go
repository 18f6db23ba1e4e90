package planet

import (
	"github.com/taigrr/planet/pkg/animation"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/projection"
)

// PanBegin starts a drag, stopping any running animation.
func (p *Planet) PanBegin() {
	p.gestures.PanBegin()
}

// PanDelta rotates by the drag since the previous sample.
func (p *Planet) PanDelta(dx, dy float64) {
	if p.gestures.PanDelta(dx, dy) {
		p.refresh()
	}
}

// PanEnd finishes a drag released at (vx, vy) points per second.
func (p *Planet) PanEnd(vx, vy float64) {
	p.gestures.PanEnd(vx, vy)
}

// PinchBegin starts a pinch, stopping any running animation.
func (p *Planet) PinchBegin() {
	p.gestures.PinchBegin()
}

// Pinch zooms by the incremental factor since the previous sample.
func (p *Planet) Pinch(factor float64) {
	p.gestures.Pinch(factor)
	p.refresh()
}

// PinchEnd finishes a pinch.
func (p *Planet) PinchEnd() {
	p.gestures.PinchEnd()
}

// Pick returns the label under point. extents holds the rendered size of
// each label in label order; missing entries use the minimum hit size.
func (p *Planet) Pick(point math3d.Vec2, extents []projection.Extent) (int, bool) {
	return projection.Pick(point, p.placements, extents, p.cfg.HitTesting)
}

// Tap picks the label under point, starts its pulse and emits EventTap.
func (p *Planet) Tap(point math3d.Vec2, extents []projection.Extent) (int, bool) {
	if !p.cfg.Gesture.Enabled {
		return -1, false
	}
	i, ok := p.Pick(point, extents)
	if !ok {
		return -1, false
	}
	p.pulses[i].Trigger()
	p.emit(Event{Kind: EventTap, Index: i, Label: p.labels[i], Rotation: p.state.Rotation(), Scale: p.state.Scale()})
	return i, true
}

// LongPress picks the label under point and emits EventLongPress.
func (p *Planet) LongPress(point math3d.Vec2, extents []projection.Extent) (int, bool) {
	if !p.cfg.Gesture.Enabled {
		return -1, false
	}
	i, ok := p.Pick(point, extents)
	if !ok {
		return -1, false
	}
	p.emit(Event{Kind: EventLongPress, Index: i, Label: p.labels[i], Rotation: p.state.Rotation(), Scale: p.state.Scale()})
	return i, true
}

// DoubleTap resets the rotation and restores the default scale.
func (p *Planet) DoubleTap() bool {
	if !p.cfg.Gesture.Enabled {
		return false
	}
	p.Reset()
	p.emit(Event{Kind: EventDoubleTap, Index: -1, Rotation: p.state.Rotation(), Scale: p.state.Scale()})
	return true
}

// AnimateRotationTo turns to target over duration seconds, keeping the
// scale. onComplete runs once on arrival and never if superseded or
// cancelled; it may be nil.
func (p *Planet) AnimateRotationTo(target math3d.Quat, duration float64, onComplete func()) *animation.Handle {
	return p.engine.AnimateTo(target, p.state.Scale(), duration, onComplete)
}

// AnimateScaleTo zooms to target over duration seconds, keeping the
// rotation.
func (p *Planet) AnimateScaleTo(target, duration float64, onComplete func()) *animation.Handle {
	return p.engine.AnimateTo(p.state.Rotation(), target, duration, onComplete)
}

// FocusOn turns the label at index to face the viewer. It returns nil and
// does nothing when index is out of range.
func (p *Planet) FocusOn(index int, duration float64, onComplete func()) *animation.Handle {
	if index < 0 || index >= len(p.placements) {
		Logf("planet: focus on label %d: index out of range [0, %d)", index, len(p.placements))
		return nil
	}

	current := p.placements[index].Current
	axis := current.Cross(math3d.Front())
	focus := math3d.QuatFromAxisAngle(axis, current.AngleTo(math3d.Front()))
	return p.AnimateRotationTo(focus.Mul(p.state.Rotation()), duration, onComplete)
}

// SearchAndFocus focuses on the first label whose title contains text and
// reports whether one matched.
func (p *Planet) SearchAndFocus(text string, duration float64) bool {
	matches := p.FindLabels(text)
	if len(matches) == 0 {
		return false
	}
	p.FocusOn(matches[0], duration, nil)
	return true
}

// Pause stops the running animation and holds auto-rotation off until
// Resume. Drags, pinches and transitions still work while paused, but none
// of them hands over to auto-rotation when it ends.
func (p *Planet) Pause() {
	p.engine.Stop()
	p.engine.SetPaused(true)
}

// Resume lifts Pause and restarts auto-rotation unless a gesture is in
// progress.
func (p *Planet) Resume() {
	p.engine.SetPaused(false)
	if !p.gestures.Active() {
		p.engine.StartAutoRotation()
	}
}

// Paused reports whether Pause is in effect.
func (p *Planet) Paused() bool { return p.engine.Paused() }

// Reset stops animation, returns to identity rotation and default scale,
// and resumes auto-rotation unless paused.
func (p *Planet) Reset() {
	p.engine.Stop()
	p.state.Reset(true, p.cfg.Scaling.Default)
	p.engine.StartAutoRotation()
	p.refresh()
}

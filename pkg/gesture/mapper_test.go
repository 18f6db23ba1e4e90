package gesture

import (
	"math"
	"testing"

	"github.com/taigrr/planet/pkg/animation"
	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/orientation"
)

func newTestMapper(cfg config.Config) (*Mapper, *animation.Engine, *orientation.State) {
	state := orientation.New(cfg.Scaling.Default, cfg.Scaling.Range)
	engine := animation.NewEngine(state, cfg)
	return NewMapper(state, engine, cfg), engine, state
}

func TestTrackball(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float64
		wantAxis  math3d.Vec3
		wantAngle float64
	}{
		{"horizontal drag spins about y", 100, 0, math3d.V3(0, 1, 0), 1},
		{"vertical drag spins about x", 0, 50, math3d.V3(1, 0, 0), 0.5},
		{"diagonal", 30, 40, math3d.V3(0.8, 0.6, 0), 0.5},
		{"no motion", 0, 0, math3d.Up(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis, angle := Trackball(tt.dx, tt.dy, 0.01)
			if !axis.ApproxEqual(tt.wantAxis, 1e-12) {
				t.Errorf("axis = %v, want %v", axis, tt.wantAxis)
			}
			if math.Abs(angle-tt.wantAngle) > 1e-12 {
				t.Errorf("angle = %v, want %v", angle, tt.wantAngle)
			}
		})
	}
}

func TestPanDeltaRotates(t *testing.T) {
	m, _, state := newTestMapper(config.Default())

	if !m.PanDelta(100, 0) {
		t.Fatal("PanDelta did not apply")
	}
	want := math3d.QuatFromAxisAngle(math3d.Up(), 1)
	if !state.Rotation().SameRotation(want, 1e-12) {
		t.Errorf("rotation = %v, want %v", state.Rotation(), want)
	}
}

func TestPanDeltaAccumulates(t *testing.T) {
	m, _, state := newTestMapper(config.Default())
	m.PanBegin()
	m.PanDelta(10, 0)
	m.PanDelta(0, 10)

	first := math3d.QuatFromAxisAngle(math3d.V3(0, 1, 0), 0.1)
	second := math3d.QuatFromAxisAngle(math3d.V3(1, 0, 0), 0.1)
	want := second.Mul(first)
	if !state.Rotation().SameRotation(want, 1e-12) {
		t.Errorf("rotation = %v, want %v", state.Rotation(), want)
	}
}

func TestPanDeltaIgnoresTinyMotion(t *testing.T) {
	m, _, state := newTestMapper(config.Default())
	if m.PanDelta(0.05, 0) {
		t.Error("sub-threshold drag applied a rotation")
	}
	if state.Rotation() != math3d.QuatIdentity() {
		t.Errorf("rotation = %v", state.Rotation())
	}
}

func TestPanStopsRunningTask(t *testing.T) {
	m, engine, _ := newTestMapper(config.Default())
	engine.StartAutoRotation()

	calls := 0
	h := engine.AnimateTo(math3d.QuatFromAxisAngle(math3d.Up(), 1), 1, 1, func() { calls++ })
	m.PanBegin()

	if engine.Mode() != animation.Idle {
		t.Errorf("Mode during pan = %v", engine.Mode())
	}
	if h.Status() != animation.Cancelled {
		t.Errorf("transition status = %v", h.Status())
	}
	engine.Tick(2)
	if calls != 0 {
		t.Error("cancelled transition completed")
	}
}

func TestPanEnd(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		vx, vy   float64
		wantMode animation.Mode
	}{
		{"fast release coasts", nil, 800, 0, animation.Inertia},
		{"slow release drifts", nil, 100, 100, animation.AutoRotation},
		{"inertia disabled", func(c *config.Config) { c.Inertia.Enabled = false }, 800, 0, animation.AutoRotation},
		{"nothing enabled", func(c *config.Config) {
			c.Inertia.Enabled = false
			c.AutoRotation.Enabled = false
		}, 800, 0, animation.Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			m, engine, _ := newTestMapper(cfg)
			m.PanBegin()
			m.PanDelta(20, 0)
			m.PanEnd(tt.vx, tt.vy)

			if engine.Mode() != tt.wantMode {
				t.Errorf("Mode = %v, want %v", engine.Mode(), tt.wantMode)
			}
			if engine.Interacting() {
				t.Error("engine still marked interacting")
			}
		})
	}
}

func TestPanEndInertiaVelocityScale(t *testing.T) {
	cfg := config.Default()
	cfg.AutoRotation.RememberDirection = false
	m, engine, state := newTestMapper(cfg)

	m.PanBegin()
	m.PanEnd(1000, 0)
	engine.Tick(1.0 / 60)

	// 1000 pt/s * 1e-4 = 0.1 rad per reference frame around +Y.
	want := math3d.QuatFromAxisAngle(math3d.Up(), 0.1)
	if !state.Rotation().SameRotation(want, 1e-9) {
		t.Errorf("rotation = %v, want %v", state.Rotation(), want)
	}
}

func TestPanRemembersDirection(t *testing.T) {
	cfg := config.Default()
	m, engine, _ := newTestMapper(cfg)
	m.PanDelta(0, 25)

	axis, speed := engine.AutoRotationParams()
	if !axis.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("axis = %v, want +X", axis)
	}
	// angle 0.25 -> factor 0.25/0.01/50 = 0.5
	if want := cfg.AutoRotation.Speed * 0.5; math.Abs(speed-want) > 1e-12 {
		t.Errorf("speed = %v, want %v", speed, want)
	}
}

func TestGesturesDisabled(t *testing.T) {
	m, engine, state := newTestMapper(config.DisplayOnly())
	engine.StartAutoRotation()

	if m.PanBegin() {
		t.Error("PanBegin accepted with gestures disabled")
	}
	m.PanDelta(100, 100)
	m.Pinch(2)

	if state.Rotation() != math3d.QuatIdentity() || state.Scale() != 1 {
		t.Errorf("state changed: %v, %v", state.Rotation(), state.Scale())
	}
	if engine.Mode() != animation.AutoRotation {
		t.Errorf("Mode = %v, drift should continue", engine.Mode())
	}
}

func TestPinch(t *testing.T) {
	m, engine, state := newTestMapper(config.Default())
	engine.StartAutoRotation()

	m.PinchBegin()
	if engine.Mode() != animation.Idle {
		t.Errorf("Mode during pinch = %v", engine.Mode())
	}
	m.Pinch(1.5)
	m.Pinch(1.5)
	if math.Abs(state.Scale()-2.25) > 1e-12 {
		t.Errorf("scale = %v, want 2.25", state.Scale())
	}
	m.Pinch(10)
	if state.Scale() != 3 {
		t.Errorf("scale = %v, want clamped 3", state.Scale())
	}
	if state.Rotation() != math3d.QuatIdentity() {
		t.Error("pinch changed rotation")
	}

	m.PinchEnd()
	if engine.Mode() != animation.AutoRotation {
		t.Errorf("Mode after pinch = %v", engine.Mode())
	}
}

func TestPinchScalingDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Scaling.Enabled = false
	m, _, state := newTestMapper(cfg)

	if m.PinchBegin() {
		t.Error("PinchBegin accepted with scaling disabled")
	}
	m.Pinch(2)
	if state.Scale() != 1 {
		t.Errorf("scale = %v", state.Scale())
	}
}

func TestOverlappingGestures(t *testing.T) {
	m, engine, _ := newTestMapper(config.Default())
	m.PanBegin()
	m.PinchBegin()

	m.PanEnd(0, 0)
	if !engine.Interacting() || engine.Mode() != animation.Idle {
		t.Errorf("pan end during pinch: interacting %v mode %v", engine.Interacting(), engine.Mode())
	}
	m.PinchEnd()
	if engine.Interacting() || engine.Mode() != animation.AutoRotation {
		t.Errorf("after both ended: interacting %v mode %v", engine.Interacting(), engine.Mode())
	}
}

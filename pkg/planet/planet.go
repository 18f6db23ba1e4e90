// Package planet is a rotating sphere of labels. It owns the orientation,
// runs the animation engine and gesture mapping, and projects every label
// to the screen each frame for a host renderer to draw.
//
// A Planet is not safe for concurrent use. Hosts call Tick once per frame
// and the gesture methods from the same goroutine.
package planet

import (
	"fmt"

	"github.com/taigrr/planet/pkg/animation"
	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/effects"
	"github.com/taigrr/planet/pkg/gesture"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/orientation"
	"github.com/taigrr/planet/pkg/projection"
	"github.com/taigrr/planet/pkg/sphere"
)

// Planet is one sphere of labels.
type Planet struct {
	cfg    config.Config
	layout sphere.Layout
	sink   Sink

	state    *orientation.State
	engine   *animation.Engine
	gestures *gesture.Mapper
	proj     *projection.Projector

	labels     []Label
	anchors    []math3d.Vec3
	pulses     []*effects.Pulse
	placements []projection.Placement

	width, height float64
	baseRadius    float64

	lastRotation math3d.Quat
	lastScale    float64
}

// Option configures a Planet at construction.
type Option func(*Planet)

// WithLayout anchors labels with l instead of the Fibonacci distribution.
func WithLayout(l sphere.Layout) Option {
	return func(p *Planet) { p.layout = l }
}

// WithSink delivers events to s.
func WithSink(s Sink) Option {
	return func(p *Planet) { p.sink = s }
}

// WithViewport sets the initial view size in screen units.
func WithViewport(width, height float64) Option {
	return func(p *Planet) { p.width, p.height = width, height }
}

// New returns an empty Planet. Auto-rotation starts immediately when the
// configuration enables it.
func New(cfg config.Config, opts ...Option) (*Planet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planet: %w", err)
	}

	p := &Planet{
		cfg:    cfg,
		layout: sphere.FibonacciLayout{},
		width:  400,
		height: 400,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.state = orientation.New(cfg.Scaling.Default, cfg.Scaling.Range)
	p.engine = animation.NewEngine(p.state, cfg)
	p.gestures = gesture.NewMapper(p.state, p.engine, cfg)
	p.proj = projection.NewProjector(cfg.Projection, cfg.DepthEffects.BackfaceCulling)
	p.lastRotation = p.state.Rotation()
	p.lastScale = p.state.Scale()

	p.engine.StartAutoRotation()
	p.resize()
	p.refresh()
	return p, nil
}

// Config returns the active configuration.
func (p *Planet) Config() config.Config { return p.cfg }

// ApplyConfig swaps in cfg. Labels, rotation and scale are kept; the scale
// is re-clamped to the new range.
func (p *Planet) ApplyConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("planet: %w", err)
	}
	p.cfg = cfg

	p.state.SetScaleRange(cfg.Scaling.Range)
	p.engine.Configure(cfg)
	p.gestures.Configure(cfg)
	p.proj.Configure(cfg.Projection, cfg.DepthEffects.BackfaceCulling)
	for _, pl := range p.pulses {
		pl.Configure(cfg.Tap)
	}
	if !p.engine.IsAnimating() {
		p.engine.StartAutoRotation()
	}

	p.resize()
	p.refresh()
	Logf("planet: configuration applied (projection %s, radius %s)", cfg.Projection.Type, cfg.Layout.RadiusMode)
	return nil
}

// Resize sets the view size in screen units.
func (p *Planet) Resize(width, height float64) {
	p.width, p.height = width, height
	p.resize()
	p.refresh()
}

// Center returns the screen center of the sphere.
func (p *Planet) Center() math3d.Vec2 {
	return math3d.V2(p.width/2, p.height/2)
}

// Radius returns the on-screen sphere radius including zoom.
func (p *Planet) Radius() float64 {
	return p.baseRadius * p.state.Scale()
}

// Rotation returns the current rotation.
func (p *Planet) Rotation() math3d.Quat { return p.state.Rotation() }

// Scale returns the current zoom.
func (p *Planet) Scale() float64 { return p.state.Scale() }

// Mode returns the running animation task.
func (p *Planet) Mode() animation.Mode { return p.engine.Mode() }

// Interacting reports whether a pan or pinch is in progress.
func (p *Planet) Interacting() bool { return p.gestures.Active() }

// SetRotation replaces the rotation. It is normalized.
func (p *Planet) SetRotation(q math3d.Quat) {
	p.state.SetRotation(q)
	p.refresh()
}

// SetScale replaces the zoom, clamped to the scale range.
func (p *Planet) SetScale(s float64) {
	p.state.SetScale(s)
	p.refresh()
}

// SetCulling toggles hiding of the far hemisphere.
func (p *Planet) SetCulling(on bool) {
	p.cfg.DepthEffects.BackfaceCulling = on
	p.proj.SetCulling(on)
	p.refresh()
}

// SetAutoRotationSpeed sets the drift speed in radians per reference frame.
func (p *Planet) SetAutoRotationSpeed(speed float64) {
	p.engine.SetAutoRotationSpeed(speed)
}

// SetAutoRotationAxis sets the drift axis.
func (p *Planet) SetAutoRotationAxis(axis math3d.Vec3) {
	p.engine.SetAutoRotationAxis(axis)
}

// Tick advances time by dt seconds and returns the updated placements,
// one per label in label order. The slice is reused by later calls.
func (p *Planet) Tick(dt float64) []projection.Placement {
	p.engine.Tick(dt)
	for _, pl := range p.pulses {
		pl.Update(dt)
	}
	p.refresh()
	return p.placements
}

// Placements returns the placements from the last update.
func (p *Planet) Placements() []projection.Placement { return p.placements }

// ProjectPoint places an arbitrary point of the unrotated unit sphere with
// the current rotation, zoom and projection. The result has Index -1.
func (p *Planet) ProjectPoint(v math3d.Vec3) projection.Placement {
	return p.proj.Project(-1, v, p.state.Rotation(), p.Center(), p.Radius())
}

// VisibleCount returns how many labels are currently visible.
func (p *Planet) VisibleCount() int {
	n := 0
	for _, pl := range p.placements {
		if pl.Visible {
			n++
		}
	}
	return n
}

// Style returns the depth styling of the label at index, with any running
// tap pulse folded into Scale.
func (p *Planet) Style(index int) (effects.Style, bool) {
	if index < 0 || index >= len(p.placements) {
		return effects.Style{}, false
	}
	s := effects.DepthStyle(p.placements[index].Depth, p.cfg.DepthEffects)
	s.Scale *= p.pulses[index].Scale()
	return s, true
}

// DistributionReport measures the spacing of the current anchors.
func (p *Planet) DistributionReport() sphere.Report {
	return sphere.Analyze(p.anchors)
}

func (p *Planet) resize() {
	p.baseRadius = projection.Radius(p.cfg.Layout, p.width, p.height, len(p.labels))
}

// refresh reprojects every label and reports rotation and scale changes.
func (p *Planet) refresh() {
	p.placements = p.proj.ProjectAll(p.placements, p.anchors, p.state.Rotation(), p.Center(), p.Radius())

	if r := p.state.Rotation(); r != p.lastRotation {
		p.lastRotation = r
		p.emit(Event{Kind: EventRotation, Index: -1, Rotation: r, Scale: p.state.Scale()})
	}
	if s := p.state.Scale(); s != p.lastScale {
		p.lastScale = s
		p.emit(Event{Kind: EventScale, Index: -1, Rotation: p.state.Rotation(), Scale: s})
	}
}

// Package projection maps rotated label anchors to screen positions with a
// depth value and visibility, and resolves screen points back to labels.
package projection

import (
	"math"

	"github.com/taigrr/planet/pkg/config"
	"github.com/taigrr/planet/pkg/math3d"
)

// Placement is the per-frame screen state of one label.
type Placement struct {
	Index    int
	Original math3d.Vec3
	Current  math3d.Vec3
	Screen   math3d.Vec2
	// Depth is the rotated z coordinate in [-1, 1]; larger is nearer.
	Depth       float64
	FrontFacing bool
	Visible     bool
}

// Radius returns the base sphere radius for a view of the given size,
// before zoom is applied.
func Radius(l config.Layout, width, height float64, labelCount int) float64 {
	short := math.Min(width, height)

	var r float64
	switch l.RadiusMode {
	case config.RadiusFixed:
		r = l.FixedRadius
	case config.RadiusAdaptive:
		// More labels get a slightly larger sphere.
		countFactor := math.Sqrt(float64(max(labelCount, 0))) / 10
		r = short * l.ProportionFactor * (1 + countFactor*0.2)
	default:
		r = short * l.ProportionFactor
	}
	return l.RadiusRange.Clamp(r)
}

// Projector turns anchors into Placements. The zero value is not usable;
// call NewProjector.
type Projector struct {
	cfg  config.Projection
	cull bool

	// perspective path only
	viewProj math3d.Mat4
	k        float64
}

// NewProjector returns a Projector for the given mode. With cull set,
// labels on the far hemisphere are hidden.
func NewProjector(cfg config.Projection, cull bool) *Projector {
	p := &Projector{}
	p.Configure(cfg, cull)
	return p
}

// Configure replaces the projection mode and culling flag.
func (p *Projector) Configure(cfg config.Projection, cull bool) {
	p.cfg = cfg
	p.cull = cull

	if cfg.Type == config.Perspective {
		fov := math3d.DegToRad(cfg.FieldOfView)
		eye := math3d.V3(0, 0, cfg.CameraDistance)
		view := math3d.LookAt(eye, math3d.Zero3(), math3d.Up())
		proj := math3d.Perspective(fov, 1, cfg.Near, cfg.Far)
		p.viewProj = proj.Mul(view)
		// Points on the z = 0 plane land where the orthographic path puts them.
		p.k = cfg.CameraDistance * math.Tan(fov/2)
	}
}

// SetCulling toggles back-face culling.
func (p *Projector) SetCulling(cull bool) { p.cull = cull }

// Culling reports whether back-face culling is on.
func (p *Projector) Culling() bool { return p.cull }

// Project places one anchor for the given rotation, screen center and
// radius in screen units.
func (p *Projector) Project(index int, original math3d.Vec3, rotation math3d.Quat, center math3d.Vec2, radius float64) Placement {
	current := rotation.Rotate(original)

	var screen math3d.Vec2
	if p.cfg.Type == config.Perspective {
		ndc := p.viewProj.MulVec4(math3d.V4FromV3(current, 1)).PerspectiveDivide()
		screen = math3d.V2(center.X+ndc.X*p.k*radius, center.Y-ndc.Y*p.k*radius)
	} else {
		screen = math3d.V2(center.X+current.X*radius, center.Y-current.Y*radius)
	}

	front := !p.cull || current.Z >= 0
	return Placement{
		Index:       index,
		Original:    original,
		Current:     current,
		Screen:      screen,
		Depth:       current.Z,
		FrontFacing: front,
		Visible:     front,
	}
}

// ProjectAll places every anchor, reusing dst when it has room.
func (p *Projector) ProjectAll(dst []Placement, originals []math3d.Vec3, rotation math3d.Quat, center math3d.Vec2, radius float64) []Placement {
	dst = dst[:0]
	for i, o := range originals {
		dst = append(dst, p.Project(i, o, rotation, center, radius))
	}
	return dst
}

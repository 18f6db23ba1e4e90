package render

import (
	"image/color"
	"math"

	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/planet"
)

// Wireframe draws the globe graticule: parallels and meridians of the
// rotated sphere. Segments on the far side are drawn in Back, or skipped
// when the planet culls its back face.
type Wireframe struct {
	Parallels int // latitude circles between the poles
	Meridians int
	Segments  int // line segments per full circle
	Front     color.RGBA
	Back      color.RGBA

	fb *Framebuffer
}

// NewWireframe creates a graticule renderer drawing into fb.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{
		Parallels: 5,
		Meridians: 12,
		Segments:  48,
		Front:     RGB(52, 64, 110),
		Back:      RGB(22, 26, 46),
		fb:        fb,
	}
}

// DrawLine3D draws the segment between two unit-sphere points after the
// planet's rotation and projection.
func (w *Wireframe) DrawLine3D(p *planet.Planet, a, b math3d.Vec3) {
	pa, pb := p.ProjectPoint(a), p.ProjectPoint(b)

	c := w.Front
	if pa.Depth+pb.Depth < 0 {
		if p.Config().DepthEffects.BackfaceCulling {
			return
		}
		c = w.Back
	}
	w.fb.DrawLine(
		int(math.Round(pa.Screen.X)), int(math.Round(pa.Screen.Y)),
		int(math.Round(pb.Screen.X)), int(math.Round(pb.Screen.Y)),
		c,
	)
}

// Draw renders every parallel and meridian.
func (w *Wireframe) Draw(p *planet.Planet) {
	segs := max(w.Segments, 8)

	for k := 1; k <= w.Parallels; k++ {
		lat := -math.Pi/2 + float64(k)*math.Pi/float64(w.Parallels+1)
		y, r := math.Sin(lat), math.Cos(lat)
		prev := math3d.V3(r, y, 0)
		for i := 1; i <= segs; i++ {
			s, c := math.Sincos(2 * math.Pi * float64(i) / float64(segs))
			next := math3d.V3(r*c, y, r*s)
			w.DrawLine3D(p, prev, next)
			prev = next
		}
	}

	half := segs / 2
	for j := 0; j < w.Meridians; j++ {
		ls, lc := math.Sincos(2 * math.Pi * float64(j) / float64(w.Meridians))
		prev := math3d.V3(0, -1, 0)
		for i := 1; i <= half; i++ {
			s, c := math.Sincos(-math.Pi/2 + math.Pi*float64(i)/float64(half))
			next := math3d.V3(c*lc, s, c*ls)
			w.DrawLine3D(p, prev, next)
			prev = next
		}
	}
}

package render

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/planet/pkg/planet"
	"github.com/taigrr/planet/pkg/projection"
)

// dotRadius is the dot radius in pixels at display scale 1.
const dotRadius = 1.6

// Scene draws a Planet. The planet's screen units are framebuffer pixels,
// so a terminal of cols x rows cells is a cols x 2*rows viewport.
type Scene struct {
	Background color.RGBA
	Outline    color.RGBA
	Palette    []color.RGBA
	// Titles controls whether label titles are written next to the dots of
	// labels on the near hemisphere.
	Titles bool
	// Graticule draws latitude and longitude lines under the labels.
	Graticule bool

	fb      *Framebuffer
	grid    *Wireframe
	extents []projection.Extent
	order   []int
}

// NewScene returns a scene with the default colors.
func NewScene() *Scene {
	fb := NewFramebuffer(0, 0)
	return &Scene{
		Background: ColorNight,
		Outline:    RGB(40, 48, 80),
		Palette:    DefaultPalette,
		Titles:     true,
		Graticule:  true,
		fb:         fb,
		grid:       NewWireframe(fb),
	}
}

// Resize fits the framebuffer to a terminal of cols x rows cells and
// returns the viewport size to hand to Planet.Resize.
func (sc *Scene) Resize(cols, rows int) (width, height float64) {
	sc.fb.Resize(cols, rows*2)
	return float64(cols), float64(rows * 2)
}

// Wireframe returns the graticule renderer for styling.
func (sc *Scene) Wireframe() *Wireframe { return sc.grid }

// Framebuffer returns the pixels of the last drawn frame.
func (sc *Scene) Framebuffer() *Framebuffer { return sc.fb }

// Extents returns the on-screen size of each label from the last frame, in
// label order, for Planet.Pick.
func (sc *Scene) Extents() []projection.Extent { return sc.extents }

// Color returns the display color of l: its own color if set, otherwise a
// palette entry chosen by index.
func (sc *Scene) Color(l planet.Label) color.RGBA {
	if c := l.Item.Color; c != nil {
		return RGB(c.R, c.G, c.B)
	}
	if len(sc.Palette) == 0 {
		return ColorWhite
	}
	return sc.Palette[l.Index%len(sc.Palette)]
}

// Render draws the planet into the framebuffer without touching a screen.
func (sc *Scene) Render(p *planet.Planet) {
	sc.fb.Clear(sc.Background)

	center := p.Center()
	if sc.Graticule {
		sc.grid.Draw(p)
	}
	sc.fb.DrawCircle(int(math.Round(center.X)), int(math.Round(center.Y)), int(math.Round(p.Radius())), sc.Outline)

	sc.sortBackToFront(p.Placements())
	labels := p.Labels()
	sc.extents = slices.Grow(sc.extents[:0], len(labels))[:len(labels)]
	clear(sc.extents)

	for _, i := range sc.order {
		pl := p.Placements()[i]
		style, _ := p.Style(i)
		c := Shade(sc.Color(labels[i]), style.ColorIntensity)
		r := dotRadius * style.Scale
		sc.fb.FillDisc(pl.Screen.X, pl.Screen.Y, r, c, style.Alpha)

		ext := projection.Extent{Width: 2 * r, Height: 2 * r}
		if sc.Titles && pl.Depth >= 0 {
			w := float64(TextWidth(labels[i].Item.Title))
			ext.Width = max(ext.Width, w)
			ext.Height += 2
		}
		sc.extents[i] = ext
	}
}

// Draw renders the planet and presents it on scr with titles on top. It
// does not display the screen.
func (sc *Scene) Draw(scr uv.Screen, p *planet.Planet) {
	sc.Render(p)
	sc.fb.Present(scr)
	if !sc.Titles {
		return
	}

	labels := p.Labels()
	for _, i := range sc.order {
		pl := p.Placements()[i]
		if pl.Depth < 0 {
			continue
		}
		style, _ := p.Style(i)
		fg := Mix(sc.Background, Shade(sc.Color(labels[i]), style.ColorIntensity), style.Alpha)

		title := labels[i].Item.Title
		col := int(math.Round(pl.Screen.X)) - TextWidth(title)/2
		row := int(pl.Screen.Y)/2 + 1
		DrawText(scr, col, row, uv.Style{Fg: fg, Bg: sc.Background}, title)
	}
}

// sortBackToFront orders the visible placements by ascending depth so
// nearer labels overdraw farther ones.
func (sc *Scene) sortBackToFront(placements []projection.Placement) {
	sc.order = sc.order[:0]
	for i, pl := range placements {
		if pl.Visible {
			sc.order = append(sc.order, i)
		}
	}
	slices.SortStableFunc(sc.order, func(a, b int) int {
		return cmp.Compare(placements[a].Depth, placements[b].Depth)
	})
}

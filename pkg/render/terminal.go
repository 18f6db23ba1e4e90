package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
)

// Present converts the framebuffer to terminal cells and draws them on the
// screen. Each cell shows two pixel rows: ▀ with fg=top and bg=bottom.
func (fb *Framebuffer) Present(scr uv.Screen) {
	area := scr.Bounds()
	cell := uv.Cell{Content: "▀", Width: 1}
	for row := 0; row < area.Dy() && row*2 < fb.Height; row++ {
		topY := row * 2
		botY := topY + 1

		for col := 0; col < area.Dx() && col < fb.Width; col++ {
			cell.Style = uv.Style{
				Fg: cellColor(fb.GetPixel(col, topY)),
				Bg: cellColor(fb.GetPixel(col, botY)),
			}
			scr.SetCell(area.Min.X+col, area.Min.Y+row, &cell)
		}
	}
}

// DrawText writes str starting at cell (x, y) and returns the number of
// columns it used. Wide runes take two columns and zero-width runes are
// dropped.
func DrawText(scr uv.Screen, x, y int, style uv.Style, str string) int {
	col := x
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		scr.SetCell(col, y, &uv.Cell{Content: string(r), Width: w, Style: style})
		col += w
	}
	return col - x
}

// TextWidth returns the number of terminal columns str occupies.
func TextWidth(str string) int {
	return runewidth.StringWidth(str)
}

// WidthMethod measures strings the way DrawText lays them out.
type WidthMethod struct{}

// StringWidth implements uv.WidthMethod.
func (WidthMethod) StringWidth(s string) int { return TextWidth(s) }

// cellColor maps transparent pixels to the terminal default color.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Mix blends c over base with opacity alpha in [0, 1].
func Mix(base, c color.RGBA, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*alpha + 0.5)
	}
	return color.RGBA{lerp(base.R, c.R), lerp(base.G, c.G), lerp(base.B, c.B), 255}
}

// Shade multiplies the color channels by intensity in [0, 1].
func Shade(c color.RGBA, intensity float64) color.RGBA {
	intensity = clamp01(intensity)
	return color.RGBA{
		R: uint8(float64(c.R)*intensity + 0.5),
		G: uint8(float64(c.G)*intensity + 0.5),
		B: uint8(float64(c.B)*intensity + 0.5),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
	ColorNight = color.RGBA{8, 10, 24, 255}
	ColorSky   = color.RGBA{135, 206, 235, 255}
)

// DefaultPalette colors labels that do not set their own color.
var DefaultPalette = []color.RGBA{
	{255, 99, 71, 255},
	{255, 215, 0, 255},
	{50, 205, 50, 255},
	{0, 191, 255, 255},
	{186, 85, 211, 255},
	{255, 140, 0, 255},
	{64, 224, 208, 255},
	{255, 105, 180, 255},
}

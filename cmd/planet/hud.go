package main

import (
	"fmt"
	"image/color"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/planet/pkg/planet"
	"github.com/taigrr/planet/pkg/render"
)

// statusTTL is how long a status message stays on the bottom line.
const statusTTL = 3 * time.Second

const hint = "drag: rotate  click: focus  /: search  x: remove  space: pause  ?: hud  q: quit"

var (
	hudGreen  = render.RGB(0, 255, 0)
	hudAqua   = render.RGB(0, 255, 255)
	hudYellow = render.RGB(255, 255, 0)
)

func hudStyle(fg color.Color) uv.Style {
	return uv.Style{Fg: fg, Bg: render.ColorBlack}
}

func bold(st uv.Style) uv.Style {
	st.Attrs |= uv.AttrBold
	return st
}

// HUD renders an overlay with frame rate, label counts and the last status
// message.
type HUD struct {
	show bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time

	status   string
	statusAt time.Time
}

// NewHUD creates a new HUD
func NewHUD() *HUD {
	return &HUD{show: true, fpsTime: time.Now()}
}

// Toggle shows or hides the overlay. Status messages and the search prompt
// are drawn either way.
func (h *HUD) Toggle() { h.show = !h.show }

// SetStatus shows msg on the bottom line for a few seconds.
func (h *HUD) SetStatus(msg string) {
	h.status = msg
	h.statusAt = time.Now()
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Draw writes the overlay rows. prompt, when non-empty, replaces the bottom
// line. selected names the selected label, shown under the top bar.
func (h *HUD) Draw(scr uv.Screen, p *planet.Planet, prompt, selected string) {
	area := scr.Bounds()
	width, height := area.Dx(), area.Dy()

	if h.show {
		fps := fmt.Sprintf(" %.0f FPS ", h.fps)
		render.DrawText(scr, 0, 0, hudStyle(hudGreen), fps)

		info := fmt.Sprintf(" %d labels, %d visible ", p.Len(), p.VisibleCount())
		render.DrawText(scr, max((width-render.TextWidth(info))/2, 0), 0, bold(hudStyle(render.ColorWhite)), info)

		mode := fmt.Sprintf(" %s x%.2f ", p.Mode(), p.Scale())
		if p.Paused() {
			mode = " paused" + mode
		}
		render.DrawText(scr, max(width-render.TextWidth(mode), 0), 0, hudStyle(hudAqua), mode)

		if selected != "" {
			render.DrawText(scr, 0, 1, hudStyle(render.ColorWhite), " > "+selected+" ")
		}
	}

	switch {
	case prompt != "":
		render.DrawText(scr, 0, height-1, bold(hudStyle(hudYellow)), prompt+"_")
	case h.status != "" && time.Since(h.statusAt) < statusTTL:
		render.DrawText(scr, 0, height-1, hudStyle(hudYellow), " "+h.status+" ")
	case h.show:
		render.DrawText(scr, max((width-render.TextWidth(hint))/2, 0), height-1, hudStyle(render.ColorGray), hint)
	}
}

package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/google/uuid"
	"github.com/taigrr/planet/pkg/gesture"
	"github.com/taigrr/planet/pkg/math3d"
	"github.com/taigrr/planet/pkg/planet"
	"github.com/taigrr/planet/pkg/render"
)

const (
	focusDuration = 0.6
	zoomDuration  = 0.25
	zoomStep      = 1.25
	wheelStep     = 1.1
	doubleClick   = 300 * time.Millisecond
)

// pointer tracks the primary mouse button between events.
type pointer struct {
	down         bool
	moved        bool
	lastX, lastY float64
	tracker      gesture.VelocityTracker
	lastClick    time.Time
}

// viewer owns the display and the planet. All planet calls happen on the
// goroutine running viewer.run.
type viewer struct {
	screen display
	planet *planet.Planet
	scene  *render.Scene
	hud    *HUD

	ptr       pointer
	start     time.Time
	focusNext int
	// selected is the last tapped or long-pressed label. Indices shift
	// when labels are removed, the ID does not.
	selected uuid.UUID

	searching bool
	query     []rune
}

func newViewer() *viewer {
	return &viewer{
		scene: render.NewScene(),
		hud:   NewHUD(),
		start: time.Now(),
		ptr:   pointer{tracker: gesture.VelocityTracker{Window: gesture.DefaultVelocityWindow}},
	}
}

func (v *viewer) onEvent(e planet.Event) {
	switch e.Kind {
	case planet.EventTap:
		v.selected = e.Label.ID
		v.hud.SetStatus(fmt.Sprintf("focus: %s", e.Label.Item.Title))
	case planet.EventLongPress:
		v.selected = e.Label.ID
		info := e.Label.Item.Subtitle
		if info == "" {
			info = fmt.Sprintf("label %d of %d", e.Index+1, v.planet.Len())
		}
		v.hud.SetStatus(fmt.Sprintf("%s: %s (%s)", e.Label.Item.Title, info, shortID(e.Label.ID)))
	case planet.EventDoubleTap:
		v.hud.SetStatus("reset")
	}
}

// selection returns the selected label if it is still loaded.
func (v *viewer) selection() (planet.Label, bool) {
	if v.selected == uuid.Nil {
		return planet.Label{}, false
	}
	return v.planet.LabelByID(v.selected)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// run draws frames at fps and handles input until ctx is done or the user
// quits. It takes ownership of screen and closes it on return.
func (v *viewer) run(ctx context.Context, screen display, fps int) error {
	v.screen = screen
	defer screen.Close()
	v.resize()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-screen.Events():
			if !ok || !v.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			if dt > 0.1 {
				dt = 0.1
			}
			if err := v.frame(dt); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

func (v *viewer) frame(dt float64) error {
	v.planet.Tick(dt)

	v.screen.Clear()
	v.scene.Draw(v.screen, v.planet)
	v.hud.UpdateFPS()
	var selected string
	if l, ok := v.selection(); ok {
		selected = l.Item.Title
	}
	v.hud.Draw(v.screen, v.planet, v.prompt(), selected)
	return v.screen.Display()
}

func (v *viewer) resize() {
	b := v.screen.Bounds()
	v.planet.Resize(v.scene.Resize(b.Dx(), b.Dy()))
}

// handle processes one input event and reports false to quit.
func (v *viewer) handle(ev uv.Event) bool {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		if err := v.screen.Resize(ev.Width, ev.Height); err != nil {
			planet.Logf("resize display: %v", err)
		}
		v.resize()
	case uv.KeyPressEvent:
		if v.searching {
			v.handleSearchKey(ev)
			return true
		}
		return v.handleKey(ev)
	case uv.MouseClickEvent:
		v.mouseDown(ev.Mouse())
	case uv.MouseMotionEvent:
		v.mouseMove(ev.Mouse())
	case uv.MouseReleaseEvent:
		v.mouseUp(ev.Mouse())
	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			v.zoom(wheelStep)
		case uv.MouseWheelDown:
			v.zoom(1 / wheelStep)
		}
	}
	return true
}

func (v *viewer) handleKey(ev uv.KeyPressEvent) bool {
	if ev.MatchString("esc", "ctrl+c") {
		return false
	}

	p := v.planet
	switch ev.Text {
	case "q", "Q":
		return false
	case " ":
		if p.Paused() {
			p.Resume()
			v.hud.SetStatus("resumed")
		} else {
			p.Pause()
			v.hud.SetStatus("paused")
		}
	case "r", "R":
		p.Reset()
		v.hud.SetStatus("reset")
	case "c", "C":
		on := !p.Config().DepthEffects.BackfaceCulling
		p.SetCulling(on)
		v.hud.SetStatus(fmt.Sprintf("culling %s", onOff(on)))
	case "f", "F":
		if p.Len() == 0 {
			break
		}
		i := v.focusNext % p.Len()
		v.focusNext = i + 1
		if p.FocusOn(i, focusDuration, nil) != nil {
			l, _ := p.Label(i)
			v.selected = l.ID
			v.hud.SetStatus(fmt.Sprintf("focus: %s", l.Item.Title))
		}
	case "x", "X":
		l, ok := v.selection()
		if !ok {
			v.hud.SetStatus("nothing selected")
			break
		}
		p.RemoveLabel(l.Index)
		v.selected = uuid.Nil
		v.hud.SetStatus(fmt.Sprintf("removed %s", l.Item.Title))
	case "+", "=":
		p.AnimateScaleTo(p.Scale()*zoomStep, zoomDuration, nil)
	case "-", "_":
		p.AnimateScaleTo(p.Scale()/zoomStep, zoomDuration, nil)
	case "g", "G":
		v.scene.Graticule = !v.scene.Graticule
	case "/":
		v.searching = true
		v.query = v.query[:0]
	case "?":
		v.hud.Toggle()
	}
	return true
}

func (v *viewer) handleSearchKey(ev uv.KeyPressEvent) {
	switch {
	case ev.MatchString("esc"):
		v.searching = false
	case ev.MatchString("enter"):
		v.searching = false
		q := string(v.query)
		if q == "" {
			return
		}
		if v.planet.SearchAndFocus(q, focusDuration) {
			v.hud.SetStatus(fmt.Sprintf("found %q", q))
		} else {
			v.hud.SetStatus(fmt.Sprintf("no label matches %q", q))
		}
	case ev.MatchString("backspace"):
		if n := len(v.query); n > 0 {
			v.query = v.query[:n-1]
		}
	case ev.Text != "":
		v.query = append(v.query, []rune(ev.Text)...)
	}
}

func (v *viewer) prompt() string {
	if !v.searching {
		return ""
	}
	return "/" + string(v.query)
}

// cellToPixel maps a terminal cell to the center of its two pixel rows.
func cellToPixel(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row)*2 + 1
}

func (v *viewer) mouseDown(m uv.Mouse) {
	x, y := cellToPixel(m.X, m.Y)
	switch m.Button {
	case uv.MouseLeft:
		v.ptr.down, v.ptr.moved = true, false
		v.ptr.lastX, v.ptr.lastY = x, y
		v.ptr.tracker.Reset()
		v.ptr.tracker.Add(v.now(), x, y)
	case uv.MouseRight:
		v.planet.LongPress(math3d.V2(x, y), v.scene.Extents())
	}
}

func (v *viewer) mouseMove(m uv.Mouse) {
	if !v.ptr.down {
		return
	}
	if m.Button == uv.MouseNone {
		// The release was lost, e.g. outside the window.
		v.mouseUp(m)
		return
	}
	x, y := cellToPixel(m.X, m.Y)
	dx, dy := x-v.ptr.lastX, y-v.ptr.lastY
	if dx == 0 && dy == 0 {
		return
	}
	if !v.ptr.moved {
		v.planet.PanBegin()
		v.ptr.moved = true
	}
	v.planet.PanDelta(dx, dy)
	v.ptr.tracker.Add(v.now(), x, y)
	v.ptr.lastX, v.ptr.lastY = x, y
}

func (v *viewer) mouseUp(m uv.Mouse) {
	if !v.ptr.down || m.Button == uv.MouseRight {
		return
	}
	v.ptr.down = false
	if v.ptr.moved {
		vel := v.ptr.tracker.Velocity()
		v.planet.PanEnd(vel.X, vel.Y)
		return
	}
	v.click(cellToPixel(m.X, m.Y))
}

func (v *viewer) now() float64 { return time.Since(v.start).Seconds() }

func (v *viewer) click(x, y float64) {
	now := time.Now()
	if now.Sub(v.ptr.lastClick) < doubleClick {
		v.ptr.lastClick = time.Time{}
		v.planet.DoubleTap()
		return
	}
	v.ptr.lastClick = now

	if i, ok := v.planet.Tap(math3d.V2(x, y), v.scene.Extents()); ok {
		v.planet.FocusOn(i, focusDuration, nil)
	}
}

func (v *viewer) zoom(factor float64) {
	v.planet.PinchBegin()
	v.planet.Pinch(factor)
	v.planet.PinchEnd()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

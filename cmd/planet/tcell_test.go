package main

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/planet/pkg/render"
)

func simDisplay(t *testing.T, cols, rows int) (*tcellDisplay, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return newTcellDisplay(s), s
}

func TestTcellTranslatesMouse(t *testing.T) {
	d, _ := simDisplay(t, 20, 10)
	mouse := func(x, y int, b tcell.ButtonMask) uv.Event {
		return d.translate(tcell.NewEventMouse(x, y, b, tcell.ModNone))
	}

	assert.Equal(t, uv.MouseMotionEvent{X: 1, Y: 1, Button: uv.MouseNone}, mouse(1, 1, tcell.ButtonNone))
	assert.Equal(t, uv.MouseClickEvent{X: 2, Y: 3, Button: uv.MouseLeft}, mouse(2, 3, tcell.ButtonPrimary))
	assert.Equal(t, uv.MouseMotionEvent{X: 4, Y: 3, Button: uv.MouseLeft}, mouse(4, 3, tcell.ButtonPrimary))
	assert.Equal(t, uv.MouseReleaseEvent{X: 4, Y: 3, Button: uv.MouseLeft}, mouse(4, 3, tcell.ButtonNone))

	assert.Equal(t, uv.MouseClickEvent{X: 5, Y: 5, Button: uv.MouseRight}, mouse(5, 5, tcell.ButtonSecondary))
	assert.Equal(t, uv.MouseReleaseEvent{X: 5, Y: 5, Button: uv.MouseRight}, mouse(5, 5, tcell.ButtonNone))

	assert.Equal(t, uv.MouseWheelEvent{X: 0, Y: 0, Button: uv.MouseWheelUp}, mouse(0, 0, tcell.WheelUp))
	assert.Equal(t, uv.MouseWheelEvent{X: 0, Y: 0, Button: uv.MouseWheelDown}, mouse(0, 0, tcell.WheelDown))
}

func TestTcellTranslatesKeys(t *testing.T) {
	d, _ := simDisplay(t, 20, 10)
	keyEvent := func(k tcell.Key, r rune) uv.Event {
		return d.translate(tcell.NewEventKey(k, r, tcell.ModNone))
	}

	q, ok := keyEvent(tcell.KeyRune, 'q').(uv.KeyPressEvent)
	require.True(t, ok)
	assert.Equal(t, "q", q.Text)
	assert.True(t, q.MatchString("q"))

	esc := keyEvent(tcell.KeyEscape, 0).(uv.KeyPressEvent)
	assert.True(t, esc.MatchString("esc"))
	assert.True(t, keyEvent(tcell.KeyEnter, 0).(uv.KeyPressEvent).MatchString("enter"))
	assert.True(t, keyEvent(tcell.KeyBackspace2, 0).(uv.KeyPressEvent).MatchString("backspace"))
	assert.True(t, keyEvent(tcell.KeyCtrlC, 0).(uv.KeyPressEvent).MatchString("ctrl+c"))
	assert.Nil(t, keyEvent(tcell.KeyF5, 0))
}

func TestTcellTranslatesResize(t *testing.T) {
	d, _ := simDisplay(t, 20, 10)
	assert.Equal(t, uv.WindowSizeEvent{Width: 30, Height: 12}, d.translate(tcell.NewEventResize(30, 12)))
}

func TestTcellCells(t *testing.T) {
	d, s := simDisplay(t, 10, 2)
	assert.Equal(t, uv.Rect(0, 0, 10, 2), d.Bounds())

	render.DrawText(d, 1, 0, uv.Style{Fg: render.RGB(255, 0, 0), Bg: render.ColorBlack, Attrs: uv.AttrBold}, "a世")
	require.NoError(t, d.Display())

	cells, w, _ := s.GetContents()
	assert.Equal(t, []rune("a"), cells[1].Runes)
	assert.Equal(t, []rune("世"), cells[2].Runes)
	fg, bg, attrs := cells[1].Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.Equal(t, 10, w)

	c := d.CellAt(1, 0)
	require.NotNil(t, c)
	assert.Equal(t, "a", c.Content)
	assert.Equal(t, render.RGB(255, 0, 0), c.Style.Fg)
	assert.NotZero(t, c.Style.Attrs&uv.AttrBold)
	assert.Nil(t, d.CellAt(10, 0))
}

func TestTcellFrame(t *testing.T) {
	d, s := simDisplay(t, 60, 30)
	v := testViewer(t)
	v.screen = d
	v.resize()
	require.NoError(t, v.frame(1.0/60))

	cells, w, _ := s.GetContents()
	var top []rune
	for col := 0; col < w; col++ {
		top = append(top, cells[col].Runes...)
	}
	assert.Contains(t, string(top), "28 labels")
}

package main

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/gdamore/tcell/v2"
	"github.com/taigrr/planet/pkg/render"
)

// tcellDisplay runs the viewer on a tcell screen for terminals the
// ultraviolet input decoder does not handle. tcell events are translated to
// their ultraviolet equivalents so the viewer only sees one event model.
type tcellDisplay struct {
	s      tcell.Screen
	events chan uv.Event
	quit   chan struct{}

	// buttons held at the last mouse event, to tell clicks from drags
	buttons tcell.ButtonMask
}

func openTcell() (*tcellDisplay, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("start screen: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()

	d := newTcellDisplay(s)
	raw := make(chan tcell.Event, 64)
	go s.ChannelEvents(raw, d.quit)
	go func() {
		for ev := range raw {
			if e := d.translate(ev); e != nil {
				select {
				case d.events <- e:
				case <-d.quit:
					return
				}
			}
		}
	}()
	return d, nil
}

func newTcellDisplay(s tcell.Screen) *tcellDisplay {
	return &tcellDisplay{
		s:      s,
		events: make(chan uv.Event, 64),
		quit:   make(chan struct{}),
	}
}

func (d *tcellDisplay) Bounds() uv.Rectangle {
	w, h := d.s.Size()
	return uv.Rect(0, 0, w, h)
}

// CellAt reads back a cell. Only the content, width, colors and bold
// survive the round trip through tcell.
func (d *tcellDisplay) CellAt(x, y int) *uv.Cell {
	if !(uv.Position{X: x, Y: y}).In(d.Bounds()) {
		return nil
	}
	r, comb, style, width := d.s.GetContent(x, y)
	fg, bg, attrs := style.Decompose()
	c := &uv.Cell{
		Content: string(append([]rune{r}, comb...)),
		Width:   width,
		Style:   uv.Style{Fg: fromTcell(fg), Bg: fromTcell(bg)},
	}
	if attrs&tcell.AttrBold != 0 {
		c.Style.Attrs |= uv.AttrBold
	}
	return c
}

func (d *tcellDisplay) SetCell(x, y int, c *uv.Cell) {
	if c == nil {
		d.s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		return
	}
	// Placeholders behind wide cells are tcell's job.
	if c.Width == 0 {
		return
	}
	runes := []rune(c.Content)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	d.s.SetContent(x, y, runes[0], runes[1:], toTcell(c.Style))
}

func (d *tcellDisplay) WidthMethod() uv.WidthMethod { return render.WidthMethod{} }

func (d *tcellDisplay) Events() <-chan uv.Event { return d.events }

func (d *tcellDisplay) Resize(int, int) error {
	d.s.Sync()
	return nil
}

func (d *tcellDisplay) Clear() { d.s.Clear() }

func (d *tcellDisplay) Display() error {
	d.s.Show()
	return nil
}

func (d *tcellDisplay) Close() error {
	close(d.quit)
	d.s.Fini()
	return nil
}

// translate maps a tcell event onto the ultraviolet event the viewer
// handles, or nil for events it ignores. tcell reports button state rather
// than transitions, so clicks and releases are derived from the buttons
// held at the previous mouse event.
func (d *tcellDisplay) translate(ev tcell.Event) uv.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return uv.WindowSizeEvent{Width: w, Height: h}
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		m := uv.Mouse{X: x, Y: y, Mod: translateMod(ev.Modifiers())}
		buttons := ev.Buttons()

		switch {
		case buttons&tcell.WheelUp != 0:
			m.Button = uv.MouseWheelUp
			return uv.MouseWheelEvent(m)
		case buttons&tcell.WheelDown != 0:
			m.Button = uv.MouseWheelDown
			return uv.MouseWheelEvent(m)
		}

		prev := d.buttons
		d.buttons = buttons & (tcell.ButtonPrimary | tcell.ButtonSecondary)
		switch {
		case d.buttons&tcell.ButtonPrimary != 0:
			m.Button = uv.MouseLeft
			if prev&tcell.ButtonPrimary == 0 {
				return uv.MouseClickEvent(m)
			}
			return uv.MouseMotionEvent(m)
		case d.buttons&tcell.ButtonSecondary != 0:
			m.Button = uv.MouseRight
			if prev&tcell.ButtonSecondary == 0 {
				return uv.MouseClickEvent(m)
			}
			return uv.MouseMotionEvent(m)
		case prev&tcell.ButtonPrimary != 0:
			m.Button = uv.MouseLeft
			return uv.MouseReleaseEvent(m)
		case prev&tcell.ButtonSecondary != 0:
			m.Button = uv.MouseRight
			return uv.MouseReleaseEvent(m)
		}
		return uv.MouseMotionEvent(m)
	}
	return nil
}

func translateKey(ev *tcell.EventKey) uv.Event {
	k := uv.Key{Mod: translateMod(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyRune:
		k.Code = ev.Rune()
		k.Text = string(ev.Rune())
	case tcell.KeyEscape:
		k.Code = uv.KeyEscape
	case tcell.KeyEnter:
		k.Code = uv.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.Code = uv.KeyBackspace
	case tcell.KeyCtrlC:
		k.Code, k.Mod = 'c', uv.ModCtrl
	default:
		return nil
	}
	return uv.KeyPressEvent(k)
}

func translateMod(m tcell.ModMask) uv.KeyMod {
	var mod uv.KeyMod
	if m&tcell.ModShift != 0 {
		mod |= uv.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= uv.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= uv.ModAlt
	}
	return mod
}

func toTcell(st uv.Style) tcell.Style {
	style := tcell.StyleDefault
	if st.Fg != nil {
		style = style.Foreground(tcell.FromImageColor(st.Fg))
	}
	if st.Bg != nil {
		style = style.Background(tcell.FromImageColor(st.Bg))
	}
	return style.Bold(st.Attrs&uv.AttrBold != 0)
}

func fromTcell(c tcell.Color) color.Color {
	if c == tcell.ColorDefault {
		return nil
	}
	r, g, b := c.RGB()
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

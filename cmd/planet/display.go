package main

import (
	"context"
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// display is a terminal the viewer draws on and reads input from. Cells are
// written through uv.Screen and shown by Display.
type display interface {
	uv.Screen
	Events() <-chan uv.Event
	// Resize fits the cell buffer to a new window size and forces a full
	// repaint on the next Display.
	Resize(width, height int) error
	Clear()
	Display() error
	Close() error
}

// uvDisplay is the default display, an ultraviolet terminal on the alternate
// screen with any-event mouse tracking.
type uvDisplay struct {
	*uv.Terminal
}

func openTerminal() (*uvDisplay, error) {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return nil, fmt.Errorf("resize terminal: %w", err)
	}

	// Any-event tracking with SGR coordinates.
	if _, err := term.WriteString(ansi.SetModeMouseAnyEvent + ansi.SetModeMouseExtSgr); err != nil {
		return nil, fmt.Errorf("enable mouse: %w", err)
	}
	return &uvDisplay{Terminal: term}, nil
}

func (d *uvDisplay) Resize(width, height int) error {
	d.Erase()
	return d.Terminal.Resize(width, height)
}

func (d *uvDisplay) Close() error {
	_, _ = d.WriteString(ansi.ResetModeMouseAnyEvent + ansi.ResetModeMouseExtSgr)
	d.ExitAltScreen()
	d.ShowCursor()
	if err := d.Display(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return d.Shutdown(context.Background())
}

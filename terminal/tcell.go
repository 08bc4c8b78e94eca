package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellsnake/input"
)

// TcellSurface renders cells through a tcell screen
// Covers consoles the raw ANSI backend cannot drive, Windows included
type TcellSurface struct {
	screen tcell.Screen
	style  tcell.Style

	width, height int
	cx, cy        int
	active        bool
}

// NewTcellSurface wraps screen; the screen is initialised by Init
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Init starts the screen and hides the cursor
func (s *TcellSurface) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.width, s.height = s.screen.Size()
	s.active = true
	return nil
}

// Fini restores the console; no-op unless Init succeeded
func (s *TcellSurface) Fini() {
	if !s.active {
		return
	}
	s.active = false
	s.screen.Fini()
}

func (s *TcellSurface) Size() (int, int) {
	s.width, s.height = s.screen.Size()
	return s.width, s.height
}

func (s *TcellSurface) MoveCursor(x, y int) error {
	s.cx, s.cy = x, y
	return nil
}

// Write sets one screen cell per byte from the cursor, wrapping at the right edge
func (s *TcellSurface) Write(p []byte) error {
	for _, b := range p {
		if s.width > 0 && s.cx >= s.width {
			s.cx = 0
			s.cy++
		}
		s.screen.SetContent(s.cx, s.cy, GlyphRune(b), nil, s.style)
		s.cx++
	}
	return nil
}

// Flush makes pending cell changes visible
func (s *TcellSurface) Flush() error {
	s.screen.Show()
	return nil
}

// TcellHook captures keys from a tcell screen's event queue
type TcellHook struct {
	screen tcell.Screen

	latest input.Code
	seen   bool
}

// NewTcellHook creates a hook draining screen's events
func NewTcellHook(screen tcell.Screen) *TcellHook {
	return &TcellHook{screen: screen}
}

func (h *TcellHook) Install() error {
	return nil
}

// Pump consumes every queued event without blocking
func (h *TcellHook) Pump() {
	for h.screen.HasPendingEvent() {
		ev, ok := h.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		if c, ok := codeFromTcell(ev); ok {
			h.latest = c
			h.seen = true
		}
	}
}

func (h *TcellHook) Latest() (input.Code, bool) {
	return h.latest, h.seen
}

func (h *TcellHook) Uninstall() {}

func codeFromTcell(ev *tcell.EventKey) (input.Code, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyCtrlC:
		return input.KeyInterrupt, true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return input.KeyInterrupt, true
		}
		return input.CodeFromRune(ev.Rune())
	}
	return input.KeyNone, false
}

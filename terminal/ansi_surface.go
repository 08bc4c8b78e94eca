package terminal

import (
	"bufio"
	"fmt"
	"sync"
)

// ANSISurface drives an xterm-compatible tty with raw bytes and CUP cursor moves
// Not safe for concurrent writes; the render loop is its only writer
type ANSISurface struct {
	backend Backend
	w       *bufio.Writer

	width  int
	cx, cy int

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSISurface creates a surface on the process stdin/stdout tty
func NewANSISurface() *ANSISurface {
	return newANSISurface(newBackend())
}

func newANSISurface(b Backend) *ANSISurface {
	return &ANSISurface{
		backend: b,
		w:       bufio.NewWriterSize(b, 65536),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor, disables auto-wrap
func (s *ANSISurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	s.width, _ = s.backend.Size()

	s.w.Write(csiAltScreenEnter)
	s.w.Write(csiCursorHide)
	s.w.Write(csiAutoWrapOff)
	s.w.Write(csiClear)
	s.cx, s.cy = 0, 0

	s.initialized = true
	return s.w.Flush()
}

// Fini restores cursor, auto-wrap, main screen and tty mode. Safe to call multiple times
func (s *ANSISurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	s.w.Write(csiCursorShow)
	s.w.Write(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer gets it
	s.w.Write(csiAutoWrapOn)
	s.w.Write(csiSGR0)
	s.w.Flush()

	s.backend.Fini()
	s.finalized = true
}

// Size returns the live tty dimensions
func (s *ANSISurface) Size() (int, int) {
	w, h := s.backend.Size()
	s.width = w
	return w, h
}

// MoveCursor emits a CUP sequence
func (s *ANSISurface) MoveCursor(x, y int) error {
	s.cx, s.cy = x, y
	writeCursorPos(s.w, x, y)
	return nil
}

// Write lays p down from the cursor; with auto-wrap off, row ends are crossed
// by explicit cursor moves
func (s *ANSISurface) Write(p []byte) error {
	for len(p) > 0 {
		if s.width > 0 && s.cx >= s.width {
			s.cx = 0
			s.cy++
			writeCursorPos(s.w, s.cx, s.cy)
		}

		n := len(p)
		if s.width > 0 {
			n = min(n, s.width-s.cx)
		}
		s.writeCells(p[:n])
		s.cx += n
		p = p[n:]
	}
	return nil
}

// writeCells emits cell bytes, translating shade blocks to UTF-8
func (s *ANSISurface) writeCells(cells []byte) {
	for _, b := range cells {
		if b >= 0x20 && b < 0x7f {
			s.w.WriteByte(b)
			continue
		}
		s.w.WriteRune(GlyphRune(b))
	}
}

// Flush pushes buffered output to the tty
func (s *ANSISurface) Flush() error {
	return s.w.Flush()
}

// @focus: #sys { term }
// Package terminal provides the display surfaces and key hooks the renderer
// and input sampler run on.
//
// Surfaces:
//   - ANSISurface: raw unix tty, CUP cursor moves, alternate screen, auto-wrap off
//   - TcellSurface: any console tcell supports, Windows included
//   - MemorySurface: in-memory grid that records every write, for tests and bench
//
// Cells are single bytes. CP437 shade blocks are translated to their UTF-8
// glyphs on output; other control bytes print as blanks.
//
// EmergencyReset restores a sane tty after a crash without touching the surfaces.
package terminal

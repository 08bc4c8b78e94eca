package terminal

import "io"

// Backend abstracts the platform tty: raw mode lifecycle, geometry, output
type Backend interface {
	io.Writer

	// Init enters raw mode
	Init() error

	// Fini restores the original tty mode. Safe to call multiple times
	Fini()

	// Size returns the grid dimensions; falls back to 80x24 if the query fails
	Size() (width, height int)
}

// Package render composes registered drawables into a flat cell grid and pushes
// only the changed runs of cells to a character-cell surface.
//
// Frame pipeline (Renderer.Render):
//  1. geometry check, reallocate + full repaint on change
//  2. clear back buffer
//  3. stamp every registered drawable into the back buffer
//  4. swap back/front
//  5. emit maximal changed runs of front against back, restore cursor
package render

// Surface is the display boundary: a grid of single-byte cells addressed by (column, row)
type Surface interface {
	// Size returns the live grid dimensions; must be cheap enough to call every frame
	Size() (width, height int)

	// MoveCursor positions the write cursor (0-indexed)
	MoveCursor(x, y int) error

	// Write lays down p from the cursor, continuing on the next row past the right edge
	Write(p []byte) error

	// Flush commits buffered output to the physical display
	Flush() error
}

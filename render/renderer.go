package render

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Config selects the cell values used for empty and occupied cells
type Config struct {
	Blank  byte
	Filled byte
}

// DefaultConfig returns space for blank cells and the shade block for filled ones
func DefaultConfig() Config {
	return Config{Blank: BlankCell, Filled: FilledCell}
}

// FrameStats describes the display traffic of the last frame
type FrameStats struct {
	Runs        int  // cursor-positioned writes
	Cells       int  // cells written
	FullRepaint bool // frame included a full repaint
}

// Renderer owns the buffer pair and drawable registry for one surface
// Not safe for concurrent use; everything runs on the main loop goroutine
type Renderer struct {
	surface Surface
	cfg     Config

	width  int
	height int

	buffers  bufferPair
	registry Registry

	stats    FrameStats
	repaints int
}

// New acquires the surface geometry, allocates both buffers and paints the
// initial blank screen
func New(surface Surface, cfg Config) (*Renderer, error) {
	r := &Renderer{
		surface: surface,
		cfg:     cfg,
	}

	w, h := surface.Size()
	if _, err := r.EnsureSize(w, h); err != nil {
		return nil, fmt.Errorf("initial paint: %w", err)
	}
	return r, nil
}

// Register adds d to the set of drawables stamped each frame
func (r *Renderer) Register(d *Drawable) {
	r.registry.Register(d)
}

// Size returns the grid dimensions of the current buffers
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Stats returns traffic statistics for the most recent frame
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Repaints returns how many full repaints have been performed
func (r *Renderer) Repaints() int {
	return r.repaints
}

// Render runs one frame: resize check, clear, rasterize, swap, diff emit
func (r *Renderer) Render() error {
	r.stats = FrameStats{}

	w, h := r.surface.Size()
	resized, err := r.EnsureSize(w, h)
	if err != nil {
		return err
	}

	r.buffers.clear(r.cfg.Blank)
	r.rasterize()
	r.buffers.swap()

	if err := r.steadyRender(); err != nil {
		return err
	}
	if resized {
		log.Debug().Int("repaints", r.repaints).Msg("full repaint after resize")
	}

	if r.stats.Runs > 0 {
		log.Trace().Int("runs", r.stats.Runs).Int("cells", r.stats.Cells).Msg("frame")
	}
	return nil
}

// EnsureSize reallocates and fully repaints when the geometry changed
// Idempotent: an unchanged geometry performs no allocation and no output
func (r *Renderer) EnsureSize(width, height int) (bool, error) {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height

	if width == r.width && height == r.height && r.buffers.len() == n && len(r.buffers.back) == n {
		return false, nil
	}

	log.Debug().
		Int("from_w", r.width).Int("from_h", r.height).
		Int("to_w", width).Int("to_h", height).
		Msg("surface resized")

	r.width = width
	r.height = height
	r.buffers.resize(n)

	r.buffers.clear(r.cfg.Blank)
	r.buffers.swap()
	r.buffers.clear(r.cfg.Blank)

	if err := r.PaintWholeScreen(); err != nil {
		return true, err
	}
	return true, nil
}

// PaintWholeScreen recomposes every drawable and writes the entire grid in one write
// Used after a resize and for forced full redraws
func (r *Renderer) PaintWholeScreen() error {
	r.buffers.clear(r.cfg.Blank)
	r.rasterize()
	r.buffers.swap()

	r.repaints++
	r.stats.FullRepaint = true

	if r.buffers.len() == 0 {
		return nil
	}

	if err := r.surface.MoveCursor(0, 0); err != nil {
		return fmt.Errorf("full repaint: %w", err)
	}
	if err := r.surface.Write(r.buffers.front); err != nil {
		return fmt.Errorf("full repaint: %w", err)
	}
	if err := r.surface.MoveCursor(0, 0); err != nil {
		return fmt.Errorf("full repaint: %w", err)
	}
	return r.surface.Flush()
}

// rasterize stamps all live drawables into the back buffer in registration order
func (r *Renderer) rasterize() {
	r.registry.Each(func(d *Drawable) {
		stamp(r.buffers.back, r.width, r.height, d.Rect(), r.cfg.Filled)
	})
}

// steadyRender writes only the runs where front (new) differs from back (shown)
func (r *Renderer) steadyRender() error {
	front := r.buffers.front
	err := EachRun(r.buffers.back, front, func(run Run) error {
		x, y := run.Start%r.width, run.Start/r.width
		if err := r.surface.MoveCursor(x, y); err != nil {
			return err
		}
		if err := r.surface.Write(front[run.Start:run.End]); err != nil {
			return err
		}
		r.stats.Runs++
		r.stats.Cells += run.Len()
		return nil
	})
	if err != nil {
		return fmt.Errorf("steady render: %w", err)
	}

	if r.stats.Runs == 0 {
		return nil
	}
	if err := r.surface.MoveCursor(0, 0); err != nil {
		return fmt.Errorf("steady render: %w", err)
	}
	return r.surface.Flush()
}

// Cell returns the displayed cell at (x, y), ok=false outside the grid
func (r *Renderer) Cell(x, y int) (byte, bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, false
	}
	return r.buffers.front[y*r.width+x], true
}

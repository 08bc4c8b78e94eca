package game

import (
	"github.com/lixenwraith/cellsnake/core"
	"github.com/lixenwraith/cellsnake/render"
)

// World is the walled playfield
// The bottom terminal row is left free so the cursor parks below the frame
type World struct {
	Width, Height int16 // framed area including walls
	Center        core.Coord
	walls         []*render.Drawable
}

func newWorld(width, height int, reg Registrar) *World {
	w := &World{
		Width:  int16(max(width, 0)),
		Height: int16(max(height-1, 0)),
	}
	w.Center = core.Coord{X: w.Width / 2, Y: w.Height / 2}

	w.walls = []*render.Drawable{
		render.NewDrawable(core.Coord{X: 0, Y: 0}, core.Coord{X: 1, Y: w.Height}),
		render.NewDrawable(core.Coord{X: w.Width - 1, Y: 0}, core.Coord{X: 1, Y: w.Height}),
		render.NewDrawable(core.Coord{X: 0, Y: 0}, core.Coord{X: w.Width, Y: 1}),
		render.NewDrawable(core.Coord{X: 0, Y: w.Height - 1}, core.Coord{X: w.Width, Y: 1}),
	}
	for _, d := range w.walls {
		reg.Register(d)
	}
	return w
}

// HitsWall reports whether c is on the frame
func (w *World) HitsWall(c core.Coord) bool {
	for _, d := range w.walls {
		if d.Rect().Contains(c) {
			return true
		}
	}
	return false
}

// Interior returns the free area inside the walls
func (w *World) Interior() core.Rect {
	return core.Rect{
		Pos:  core.Coord{X: 1, Y: 1},
		Size: core.Coord{X: max(w.Width-2, 0), Y: max(w.Height-2, 0)},
	}
}

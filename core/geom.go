// Package core holds the cell-space value types shared by the renderer and the
// game, plus process-level crash handling.
package core

// Coord is a cell-space coordinate or extent
// Negative values are legal and mean "off-grid"
type Coord struct {
	X, Y int16
}

// OffGrid is where despawned entities are parked; it never rasterizes
var OffGrid = Coord{X: -1, Y: -1}

// Add returns the component-wise sum
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Rect is an axis-aligned cell region; Size components are >= 0
type Rect struct {
	Pos  Coord
	Size Coord
}

// Contains reports whether c lies inside the rectangle
func (r Rect) Contains(c Coord) bool {
	dx := int(c.X) - int(r.Pos.X)
	dy := int(c.Y) - int(r.Pos.Y)
	if dx < 0 || dy < 0 {
		return false
	}
	return dx < int(r.Size.X) && dy < int(r.Size.Y)
}

// Clip intersects the rectangle with the grid [0,width)x[0,height)
// Returns half-open bounds in int space; empty when x0 >= x1 or y0 >= y1
func (r Rect) Clip(width, height int) (x0, y0, x1, y1 int) {
	x0, y0 = int(r.Pos.X), int(r.Pos.Y)
	x1, y1 = x0+int(r.Size.X), y0+int(r.Size.Y)
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, width)
	y1 = min(y1, height)
	return x0, y0, x1, y1
}

package render

import "github.com/lixenwraith/cellsnake/core"

// stamp fills rect's cells in a width x height row-major grid with glyph
// Cells outside the grid are clipped. Returns the number of cells written
func stamp(cells []byte, width, height int, rect core.Rect, glyph byte) int {
	x0, y0, x1, y1 := rect.Clip(width, height)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	n := 0
	for y := y0; y < y1; y++ {
		start := y*width + x0
		end := y*width + x1
		if start < 0 || end > len(cells) {
			continue
		}
		row := cells[start:end]
		for i := range row {
			row[i] = glyph
		}
		n += len(row)
	}
	return n
}

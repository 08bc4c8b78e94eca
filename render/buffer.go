package render

// Default cell values
const (
	BlankCell  byte = ' '
	FilledCell byte = 178 // CP437 dark shade block
)

// bufferPair holds the composing (back) and displayed (front) cell grids
// Both are row-major, index = y*width + x, and always the same length
type bufferPair struct {
	back  []byte
	front []byte
}

// resize sets both buffers to n cells, reusing capacity when possible
func (p *bufferPair) resize(n int) {
	p.back = resizeCells(p.back, n)
	p.front = resizeCells(p.front, n)
}

func resizeCells(cells []byte, n int) []byte {
	if cap(cells) < n {
		return make([]byte, n)
	}
	return cells[:n]
}

// clear fills the back buffer with blank
func (p *bufferPair) clear(blank byte) {
	fillCells(p.back, blank)
}

// swap exchanges buffer identities without copying
func (p *bufferPair) swap() {
	p.back, p.front = p.front, p.back
}

// len returns the cell count of the pair
func (p *bufferPair) len() int {
	return len(p.front)
}

// fillCells sets every cell to v using exponential copy
func fillCells(cells []byte, v byte) {
	if len(cells) == 0 {
		return
	}
	cells[0] = v
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}

package terminal

// WriteOp is one recorded Write call on a MemorySurface
type WriteOp struct {
	X, Y int
	Data []byte
}

// MemorySurface is an in-memory cell grid that records every write
// Backs the headless bench and the renderer tests
type MemorySurface struct {
	width  int
	height int
	blank  byte
	cells  []byte

	cx, cy int

	ops     []WriteOp
	flushes int
}

// NewMemorySurface creates a width x height grid filled with blank
func NewMemorySurface(width, height int, blank byte) *MemorySurface {
	s := &MemorySurface{blank: blank}
	s.SetSize(width, height)
	return s
}

// SetSize simulates a console resize; previous content is discarded
func (s *MemorySurface) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.cells = make([]byte, width*height)
	for i := range s.cells {
		s.cells[i] = s.blank
	}
}

func (s *MemorySurface) Size() (int, int) {
	return s.width, s.height
}

func (s *MemorySurface) MoveCursor(x, y int) error {
	s.cx, s.cy = x, y
	return nil
}

// Write records the op and copies p into the grid from the cursor, wrapping rows
// Bytes past the end of the grid are dropped
func (s *MemorySurface) Write(p []byte) error {
	data := make([]byte, len(p))
	copy(data, p)
	s.ops = append(s.ops, WriteOp{X: s.cx, Y: s.cy, Data: data})

	idx := s.cy*s.width + s.cx
	for _, b := range p {
		if idx >= 0 && idx < len(s.cells) {
			s.cells[idx] = b
		}
		idx++
	}
	if s.width > 0 {
		s.cx, s.cy = idx%s.width, idx/s.width
	}
	return nil
}

func (s *MemorySurface) Flush() error {
	s.flushes++
	return nil
}

// Cells returns a copy of the grid contents
func (s *MemorySurface) Cells() []byte {
	out := make([]byte, len(s.cells))
	copy(out, s.cells)
	return out
}

// Cell returns the cell at (x, y), ok=false outside the grid
func (s *MemorySurface) Cell(x, y int) (byte, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	return s.cells[y*s.width+x], true
}

// Ops returns the recorded writes since the last ResetLog
func (s *MemorySurface) Ops() []WriteOp {
	return s.ops
}

// BytesWritten sums the payload of all recorded writes
func (s *MemorySurface) BytesWritten() int {
	n := 0
	for _, op := range s.ops {
		n += len(op.Data)
	}
	return n
}

// Flushes returns the number of Flush calls since the last ResetLog
func (s *MemorySurface) Flushes() int {
	return s.flushes
}

// ResetLog clears recorded writes and counters, keeping the grid
func (s *MemorySurface) ResetLog() {
	s.ops = nil
	s.flushes = 0
}

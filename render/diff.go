// @focus: #render { diff }
package render

import "errors"

// ErrLengthMismatch is returned when diffing grids of different sizes
var ErrLengthMismatch = errors.New("render: buffer length mismatch")

// Run is a maximal span [Start, End) of cells that differ between two grids
type Run struct {
	Start int
	End   int
}

// Len returns the number of cells in the run
func (r Run) Len() int {
	return r.End - r.Start
}

// EachRun scans prev and next in row-major order and calls fn for every
// maximal contiguous run of changed cells. Runs may span row boundaries
// Stops at the first error returned by fn
func EachRun(prev, next []byte, fn func(Run) error) error {
	if len(prev) != len(next) {
		return ErrLengthMismatch
	}

	start := -1
	for i := range next {
		if next[i] != prev[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if err := fn(Run{Start: start, End: i}); err != nil {
				return err
			}
			start = -1
		}
	}

	if start >= 0 {
		return fn(Run{Start: start, End: len(next)})
	}
	return nil
}

// Runs collects the changed runs between prev and next
func Runs(prev, next []byte) ([]Run, error) {
	var runs []Run
	err := EachRun(prev, next, func(r Run) error {
		runs = append(runs, r)
		return nil
	})
	return runs, err
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{Pos: Coord{X: 2, Y: 3}, Size: Coord{X: 2, Y: 1}}

	tests := []struct {
		name string
		c    Coord
		want bool
	}{
		{"origin corner", Coord{2, 3}, true},
		{"far corner", Coord{3, 3}, true},
		{"right of", Coord{4, 3}, false},
		{"below", Coord{2, 4}, false},
		{"left of", Coord{1, 3}, false},
		{"off grid", OffGrid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.c))
		})
	}
}

func TestRectContainsZeroSize(t *testing.T) {
	r := Rect{Pos: Coord{1, 1}}
	assert.False(t, r.Contains(Coord{1, 1}))
}

func TestRectClip(t *testing.T) {
	// Partially outside on the left/top
	x0, y0, x1, y1 := Rect{Pos: Coord{-2, -1}, Size: Coord{4, 3}}.Clip(10, 5)
	assert.Equal(t, []int{0, 0, 2, 2}, []int{x0, y0, x1, y1})

	// Partially outside on the right/bottom
	x0, y0, x1, y1 = Rect{Pos: Coord{8, 4}, Size: Coord{5, 5}}.Clip(10, 5)
	assert.Equal(t, []int{8, 4, 10, 5}, []int{x0, y0, x1, y1})

	// Fully outside yields an empty span
	x0, _, x1, _ = Rect{Pos: OffGrid, Size: Coord{1, 1}}.Clip(10, 10)
	assert.GreaterOrEqual(t, x0, x1)
}

func TestRectClipNoInt16Overflow(t *testing.T) {
	r := Rect{Pos: Coord{X: 32760, Y: 0}, Size: Coord{X: 100, Y: 1}}
	x0, _, x1, _ := r.Clip(40000, 1)
	assert.Equal(t, 32760, x0)
	assert.Equal(t, 32860, x1)
}

package game

import (
	"github.com/lixenwraith/cellsnake/core"
	"github.com/lixenwraith/cellsnake/input"
)

// Direction is the snake heading
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var steps = [...]core.Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Step returns the one-cell offset for the direction
func (d Direction) Step() core.Coord {
	return steps[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// directionFor maps a steering key; ok is false for other keys
func directionFor(c input.Code) (Direction, bool) {
	switch c {
	case input.KeyW, input.KeyUp:
		return Up, true
	case input.KeyD, input.KeyRight:
		return Right, true
	case input.KeyS, input.KeyDown:
		return Down, true
	case input.KeyA, input.KeyLeft:
		return Left, true
	}
	return 0, false
}

func isQuit(c input.Code) bool {
	return c == input.KeyQ || c == input.KeyEscape || c == input.KeyInterrupt
}

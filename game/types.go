// Package game holds the snake simulation: board geometry, the owned game
// state and the pure functions that move it forward one tick at a time.
// It has no knowledge of terminals, timers or sound.
package game

import (
	"errors"
	"fmt"

	"github.com/natikozel/Snake/constants"
)

// Segment is one grid cell in board pixels
type Segment struct {
	X, Y int
}

// Add returns the segment offset by dx, dy
func (s Segment) Add(dx, dy int) Segment {
	return Segment{X: s.X + dx, Y: s.Y + dy}
}

// Direction is the heading of the snake
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Opposite returns the reverse heading, DirNone stays DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the unit offset in grid steps, Up decreases Y
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ErrInvalidBoard is returned by Board.Validate
var ErrInvalidBoard = errors.New("invalid board geometry")

// Board is the playing field in pixels
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultBoard returns the 500x500 board with 25px cells
func DefaultBoard() Board {
	return Board{
		Width:    constants.BoardWidth,
		Height:   constants.BoardHeight,
		CellSize: constants.CellSize,
	}
}

// Validate checks that the board is a whole grid able to hold the initial body
func (b Board) Validate() error {
	if b.CellSize <= 0 || b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive (%dx%d, cell %d)", ErrInvalidBoard, b.Width, b.Height, b.CellSize)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of cell size %d", ErrInvalidBoard, b.Width, b.Height, b.CellSize)
	}
	if b.Columns() < constants.InitialSnakeLength {
		return fmt.Errorf("%w: %d columns cannot hold a %d segment snake", ErrInvalidBoard, b.Columns(), constants.InitialSnakeLength)
	}
	return nil
}

// Columns returns the number of grid cells per row
func (b Board) Columns() int {
	return b.Width / b.CellSize
}

// Rows returns the number of grid cells per column
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// Contains reports whether the segment lies on the board
func (b Board) Contains(s Segment) bool {
	return s.X >= 0 && s.Y >= 0 && s.X <= b.Width-b.CellSize && s.Y <= b.Height-b.CellSize
}

// Step returns the segment one cell away in the given direction
func (b Board) Step(s Segment, d Direction) Segment {
	dx, dy := d.Delta()
	return s.Add(dx*b.CellSize, dy*b.CellSize)
}

// InitialBody returns the starting snake laid out along the top row,
// head on the right
func (b Board) InitialBody() []Segment {
	body := make([]Segment, constants.InitialSnakeLength)
	for i := range body {
		body[i] = Segment{X: b.CellSize * (constants.InitialSnakeLength - 1 - i), Y: 0}
	}
	return body
}

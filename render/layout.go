package render

import (
	"github.com/natikozel/Snake/constants"
	"github.com/natikozel/Snake/game"
)

// Layout maps board pixels to terminal cells and places the HUD
type Layout struct {
	Board       game.Board
	OriginX     int // terminal column of board pixel x=0
	OriginY     int // terminal row of board pixel y=0
	ColsPerCell int
}

// NewLayout returns the default layout for a board
func NewLayout(b game.Board) Layout {
	return Layout{
		Board:       b,
		OriginX:     constants.BoardOriginX,
		OriginY:     constants.BoardOriginY,
		ColsPerCell: constants.ColumnsPerCell,
	}
}

// Columns returns the board width in terminal columns
func (l Layout) Columns() int {
	return l.Board.Columns() * l.ColsPerCell
}

// Rows returns the board height in terminal rows
func (l Layout) Rows() int {
	return l.Board.Rows()
}

// HUDRow returns the first terminal row below the board frame
func (l Layout) HUDRow() int {
	return l.OriginY + l.Rows() + constants.HUDGap
}

// ResetButton returns the terminal span of the reset button, on its own row
// below the score so narrow boards cannot overlap the two
func (l Layout) ResetButton() (x0, x1, y int) {
	return l.OriginX, l.OriginX + len(constants.ResetButtonText), l.HUDRow() + 1
}

// HitResetButton reports whether a terminal position lies on the reset button
func (l Layout) HitResetButton(x, y int) bool {
	x0, x1, by := l.ResetButton()
	return y == by && x >= x0 && x < x1
}

// MessageRow returns the row of the game over message
func (l Layout) MessageRow() int {
	return l.HUDRow() + 2
}

// HelpRow returns the row of the key help line
func (l Layout) HelpRow() int {
	return l.HUDRow() + 3
}

// MinSize returns the terminal size needed to show the board and HUD
func (l Layout) MinSize() (w, h int) {
	_, x1, _ := l.ResetButton()
	return max(l.OriginX+l.Columns()+1, x1), l.HelpRow() + 1
}

// cellRect clips a pixel rectangle to the board and converts it to a
// half-open terminal rectangle. ok is false when nothing is visible.
func (l Layout) cellRect(x, y, w, h int) (c0, r0, c1, r1 int, ok bool) {
	cell := l.Board.CellSize
	if cell <= 0 || w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, l.Board.Width), min(y+h, l.Board.Height)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}

	c0 = l.OriginX + x0/cell*l.ColsPerCell
	c1 = l.OriginX + ceilDiv(x1, cell)*l.ColsPerCell
	r0 = l.OriginY + y0/cell
	r1 = l.OriginY + ceilDiv(y1, cell)
	return c0, r0, c1, r1, true
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

package render

import "github.com/gdamore/tcell/v2"

// Box runes used by StrokeRect on multi-row rectangles
const (
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeSingleCell  = '□'
)

// ScreenCanvas draws board pixels onto a tcell screen. One grid cell covers
// Layout.ColsPerCell columns of a single row; everything outside the board
// is clipped.
type ScreenCanvas struct {
	screen tcell.Screen
	layout Layout
}

// NewScreenCanvas creates a canvas over the given screen
func NewScreenCanvas(screen tcell.Screen, layout Layout) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, layout: layout}
}

// Clear fills the whole board
func (c *ScreenCanvas) Clear(color tcell.Color) {
	c.FillRect(0, 0, c.layout.Board.Width, c.layout.Board.Height, color)
}

// FillRect paints blank cells with the given background
func (c *ScreenCanvas) FillRect(x, y, w, h int, color tcell.Color) {
	c0, r0, c1, r1, ok := c.layout.cellRect(x, y, w, h)
	if !ok {
		return
	}

	style := tcell.StyleDefault.Background(color)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// StrokeRect outlines the rectangle in the given foreground color.
// A single-row rect gets brackets on its ends, taller rects get box runes.
// The existing background of each touched cell is preserved.
func (c *ScreenCanvas) StrokeRect(x, y, w, h int, color tcell.Color) {
	c0, r0, c1, r1, ok := c.layout.cellRect(x, y, w, h)
	if !ok {
		return
	}

	if r1-r0 == 1 {
		if c1-c0 == 1 {
			c.stroke(c0, r0, runeSingleCell, color)
			return
		}
		c.stroke(c0, r0, '[', color)
		c.stroke(c1-1, r0, ']', color)
		return
	}

	for col := c0 + 1; col < c1-1; col++ {
		c.stroke(col, r0, runeHorizontal, color)
		c.stroke(col, r1-1, runeHorizontal, color)
	}
	for row := r0 + 1; row < r1-1; row++ {
		c.stroke(c0, row, runeVertical, color)
		c.stroke(c1-1, row, runeVertical, color)
	}
	c.stroke(c0, r0, runeTopLeft, color)
	c.stroke(c1-1, r0, runeTopRight, color)
	c.stroke(c0, r1-1, runeBottomLeft, color)
	c.stroke(c1-1, r1-1, runeBottomRight, color)
}

func (c *ScreenCanvas) stroke(col, row int, r rune, color tcell.Color) {
	_, _, style, _ := c.screen.GetContent(col, row)
	c.screen.SetContent(col, row, r, nil, style.Foreground(color))
}

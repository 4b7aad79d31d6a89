package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/natikozel/Snake/game"
)

// Canvas is a 2D drawing surface addressed in board pixels
type Canvas interface {
	// Clear fills the whole board with one color
	Clear(color tcell.Color)
	// FillRect paints a solid rectangle
	FillRect(x, y, w, h int, color tcell.Color)
	// StrokeRect outlines a rectangle, keeping what is underneath
	StrokeRect(x, y, w, h int, color tcell.Color)
}

// RenderContext carries everything a layer may read while drawing a frame
type RenderContext struct {
	State  game.State
	Canvas Canvas
	Screen tcell.Screen
	Layout Layout
	Theme  Theme
}

// LayerRenderer draws one layer of a frame. Layers only read the context.
type LayerRenderer interface {
	Render(ctx RenderContext)
}

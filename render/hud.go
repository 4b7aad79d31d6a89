package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/natikozel/Snake/constants"
	"github.com/natikozel/Snake/game"
)

// HUDRenderer draws the frame, score, game over message, reset button and
// key help around the board
type HUDRenderer struct {
	Help string
}

// NewHUDRenderer creates a HUD showing the key help for the active key table
func NewHUDRenderer(viKeys bool) *HUDRenderer {
	help := constants.HelpText
	if viKeys {
		help = constants.HelpTextVi
	}
	return &HUDRenderer{Help: help}
}

func (h *HUDRenderer) Render(ctx RenderContext) {
	l := ctx.Layout
	drawFrame(ctx.Screen, l, ctx.Theme.Frame)

	row := l.HUDRow()
	drawText(ctx.Screen, l.OriginX, row, constants.ScoreLabel+strconv.Itoa(ctx.State.Score), ctx.Theme.Text)

	x0, _, by := l.ResetButton()
	drawText(ctx.Screen, x0, by, constants.ResetButtonText, ctx.Theme.Button)

	if ctx.State.Phase == game.PhaseGameOver {
		msg := constants.GameOverText
		if ctx.State.Outcome != game.OutcomeNone {
			msg += "(" + ctx.State.Outcome.String() + ") "
		}
		drawText(ctx.Screen, l.OriginX, l.MessageRow(), msg, ctx.Theme.GameOver)
	}

	drawText(ctx.Screen, l.OriginX, l.HelpRow(), h.Help, ctx.Theme.Help)
}

// drawFrame outlines the board one cell outside its edges
func drawFrame(s tcell.Screen, l Layout, style tcell.Style) {
	left, top := l.OriginX-1, l.OriginY-1
	right, bottom := l.OriginX+l.Columns(), l.OriginY+l.Rows()

	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, runeHorizontal, nil, style)
		s.SetContent(x, bottom, runeHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, runeVertical, nil, style)
		s.SetContent(right, y, runeVertical, nil, style)
	}
	s.SetContent(left, top, runeTopLeft, nil, style)
	s.SetContent(right, top, runeTopRight, nil, style)
	s.SetContent(left, bottom, runeBottomLeft, nil, style)
	s.SetContent(right, bottom, runeBottomRight, nil, style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

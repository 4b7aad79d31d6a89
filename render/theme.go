package render

import "github.com/gdamore/tcell/v2"

// Theme holds the board palette and HUD styles
type Theme struct {
	Background  tcell.Color
	Snake       tcell.Color
	SnakeBorder tcell.Color
	Food        tcell.Color

	Frame    tcell.Style
	Text     tcell.Style
	GameOver tcell.Style
	Button   tcell.Style
	Help     tcell.Style
}

// DefaultTheme returns the classic white board with a light green snake
func DefaultTheme() Theme {
	return Theme{
		Background:  tcell.ColorWhite,
		Snake:       tcell.ColorLightGreen,
		SnakeBorder: tcell.ColorBlack,
		Food:        tcell.ColorRed,

		Frame:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Text:     tcell.StyleDefault.Bold(true),
		GameOver: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
		Button:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		Help:     tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true),
	}
}

package constants

// Terminal Layout Constants
const (
	// ColumnsPerCell is how many terminal columns one grid cell occupies.
	// Terminal glyphs are roughly twice as tall as wide.
	ColumnsPerCell = 2

	// BoardOriginX is the terminal column of the board's left edge
	BoardOriginX = 1

	// BoardOriginY is the terminal row of the board's top edge
	BoardOriginY = 1

	// HUDGap is the number of blank rows between the board and the HUD
	HUDGap = 1
)

// HUD text
const (
	ScoreLabel      = "Score: "
	GameOverText    = " GAME OVER "
	ResetButtonText = "[ Reset ]"
	HelpText        = "arrows move  r reset  q quit"
	HelpTextVi      = "arrows/hjkl move  r reset  q quit"
)

package input

import "github.com/natikozel/Snake/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Game intents
	IntentTurn  // Arrow keys, optionally hjkl
	IntentReset // r, click on the reset button
)

// Intent is the result of translating one terminal event
type Intent struct {
	Type IntentType
	Dir  game.Direction // set for IntentTurn
}

// Event converts a game intent into the engine event it drives.
// ok is false for intents handled outside the game state.
func (i Intent) Event() (ev game.Event, ok bool) {
	switch i.Type {
	case IntentTurn:
		return game.TurnEvent(i.Dir), true
	case IntentReset:
		return game.Event{Kind: game.EventReset}, true
	default:
		return game.Event{}, false
	}
}

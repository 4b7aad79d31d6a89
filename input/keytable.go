package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/natikozel/Snake/game"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func turn(d game.Direction) Intent {
	return Intent{Type: IntentTurn, Dir: d}
}

// DefaultKeyTable returns arrow-key movement with reset and quit bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     turn(game.DirUp),
			tcell.KeyDown:   turn(game.DirDown),
			tcell.KeyLeft:   turn(game.DirLeft),
			tcell.KeyRight:  turn(game.DirRight),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'r': {Type: IntentReset},
			'R': {Type: IntentReset},
		},
	}
}

// ViKeyTable adds h, j, k, l movement on top of the default bindings
func ViKeyTable() *KeyTable {
	kt := DefaultKeyTable()
	kt.Runes['h'] = turn(game.DirLeft)
	kt.Runes['j'] = turn(game.DirDown)
	kt.Runes['k'] = turn(game.DirUp)
	kt.Runes['l'] = turn(game.DirRight)
	return kt
}

// Lookup resolves a key event, unknown keys map to IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

package input

import "github.com/gdamore/tcell/v2"

// ButtonHitTester reports whether a terminal position is on the reset button
type ButtonHitTester interface {
	HitResetButton(x, y int) bool
}

// Handler translates raw terminal events into intents
type Handler struct {
	keys    *KeyTable
	buttons ButtonHitTester
	pressed bool // left button state, so a held click fires once
}

// NewHandler creates a handler. buttons may be nil to ignore the mouse.
func NewHandler(keys *KeyTable, buttons ButtonHitTester) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{keys: keys, buttons: buttons}
}

// Translate maps a terminal event to an intent
func (h *Handler) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.keys.Lookup(ev)

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := h.pressed
		h.pressed = down
		if !down || wasDown || h.buttons == nil {
			return Intent{}
		}
		x, y := ev.Position()
		if h.buttons.HitResetButton(x, y) {
			return Intent{Type: IntentReset}
		}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}

	return Intent{}
}

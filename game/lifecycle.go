package game

// EventKind discriminates the inputs accepted by Update
type EventKind uint8

const (
	EventTick EventKind = iota
	EventTurn
	EventStart
	EventReset
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "Tick"
	case EventTurn:
		return "Turn"
	case EventStart:
		return "Start"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Event is a single input to the state machine. Dir is only read for EventTurn.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// TurnEvent builds a direction change event
func TurnEvent(d Direction) Event {
	return Event{Kind: EventTurn, Dir: d}
}

// Start moves a Ready state to Running. Food already on a free cell is
// kept; otherwise a new cell is picked. Any other phase is returned as is.
func Start(s State, rng Rand) State {
	if !s.Phase.CanTransition(PhaseRunning) {
		return s
	}
	if !s.HasFood || s.Occupies(s.Food) {
		food, ok := PlaceFood(s.Board, s.Body, rng)
		s.Food, s.HasFood = food, ok
	}
	s.Phase = PhaseRunning
	return s
}

// Reset restores the initial body, score and direction and starts a new round
func Reset(s State, rng Rand) State {
	next := NewState(s.Board)
	next.Food, next.HasFood = s.Food, s.HasFood
	return Start(next, rng)
}

// Update is the single entry point applying an event to the state
func Update(s State, ev Event, rng Rand) State {
	switch ev.Kind {
	case EventTick:
		return Tick(s, rng)
	case EventTurn:
		return Turn(s, ev.Dir)
	case EventStart:
		return Start(s, rng)
	case EventReset:
		return Reset(s, rng)
	default:
		return s
	}
}

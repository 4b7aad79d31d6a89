package game

// Phase is the lifecycle stage of a round
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// transitions lists the legal targets for each phase.
// Reset goes through Ready, so Running and GameOver both lead back there.
var transitions = map[Phase][]Phase{
	PhaseReady:    {PhaseRunning},
	PhaseRunning:  {PhaseGameOver, PhaseReady},
	PhaseGameOver: {PhaseReady},
}

// CanTransition reports whether moving from p to next is legal
func (p Phase) CanTransition(next Phase) bool {
	for _, t := range transitions[p] {
		if t == next {
			return true
		}
	}
	return false
}

// Outcome records why a round ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull
)

// String returns a short human description
func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "hit the wall"
	case OutcomeSelf:
		return "bit itself"
	case OutcomeBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// State is the complete game state. It is a value: update functions take a
// State and return a new one without touching the caller's body slice.
type State struct {
	Board     Board
	Body      []Segment // head at index 0
	Food      Segment
	HasFood   bool
	Score     int
	Direction Direction
	Phase     Phase
	Outcome   Outcome
	Ticks     int
}

// NewState returns a Ready state with the initial body and no food
func NewState(b Board) State {
	return State{
		Board: b,
		Body:  b.InitialBody(),
		Phase: PhaseReady,
	}
}

// Running reports whether the tick loop should keep scheduling steps
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// Head returns the foremost segment
func (s State) Head() Segment {
	return s.Body[0]
}

// Occupies reports whether any body segment sits on c
func (s State) Occupies(c Segment) bool {
	return occupied(s.Body, c)
}

func occupied(body []Segment, c Segment) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

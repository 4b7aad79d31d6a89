package game

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func runningState(t *testing.T) State {
	t.Helper()
	s := Start(NewState(DefaultBoard()), newRand(1))
	if !s.Running() {
		t.Fatalf("Expected running state after Start, got %v", s.Phase)
	}
	return s
}

// TestAdvanceWithoutFood checks the plain move keeps the length
func TestAdvanceWithoutFood(t *testing.T) {
	s := runningState(t)
	s.Food = Segment{X: 300, Y: 300}
	s.Direction = DirRight

	next := Advance(s, newRand(2))

	want := []Segment{{125, 0}, {100, 0}, {75, 0}, {50, 0}, {25, 0}}
	if !slices.Equal(next.Body, want) {
		t.Errorf("Expected body %v, got %v", want, next.Body)
	}
	if next.Score != 0 {
		t.Errorf("Expected score 0, got %d", next.Score)
	}
}

// TestAdvanceEatsFood checks growth, score and food replacement
func TestAdvanceEatsFood(t *testing.T) {
	s := runningState(t)
	s.Food = Segment{X: 125, Y: 0}
	s.Direction = DirRight

	next := Advance(s, newRand(3))

	want := []Segment{{125, 0}, {100, 0}, {75, 0}, {50, 0}, {25, 0}, {0, 0}}
	if !slices.Equal(next.Body, want) {
		t.Errorf("Expected body %v, got %v", want, next.Body)
	}
	if next.Score != 1 {
		t.Errorf("Expected score 1, got %d", next.Score)
	}
	if !next.HasFood {
		t.Fatal("Expected new food to be placed")
	}
	if next.Occupies(next.Food) {
		t.Errorf("New food %v overlaps the body", next.Food)
	}
	if next.Food.X%s.Board.CellSize != 0 || next.Food.Y%s.Board.CellSize != 0 {
		t.Errorf("Food %v not aligned to the grid", next.Food)
	}
}

// TestAdvanceUnsetDirection verifies no movement before the first key
func TestAdvanceUnsetDirection(t *testing.T) {
	s := runningState(t)
	next := Advance(s, newRand(4))
	if !slices.Equal(next.Body, s.Body) {
		t.Errorf("Expected body unchanged, got %v", next.Body)
	}
}

// TestAdvanceDoesNotMutateInput verifies the caller's body slice is untouched
func TestAdvanceDoesNotMutateInput(t *testing.T) {
	s := runningState(t)
	s.Food = Segment{X: 300, Y: 300}
	s.Direction = DirDown
	before := slices.Clone(s.Body)

	Advance(s, newRand(5))

	if !slices.Equal(s.Body, before) {
		t.Errorf("Input body was modified: %v", s.Body)
	}
}

// TestAdvanceShiftsHeadEveryDirection checks the one-cell offset per heading
func TestAdvanceShiftsHeadEveryDirection(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Segment
	}{
		{DirUp, Segment{250, 225}},
		{DirDown, Segment{250, 275}},
		{DirLeft, Segment{225, 250}},
		{DirRight, Segment{275, 250}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := runningState(t)
			s.Body = []Segment{{250, 250}, {250, 250}}
			s.Food = Segment{0, 475}
			s.Direction = tt.dir

			next := Advance(s, newRand(6))
			if next.Head() != tt.want {
				t.Errorf("Expected head %v, got %v", tt.want, next.Head())
			}
			if len(next.Body) != len(s.Body) {
				t.Errorf("Expected length %d, got %d", len(s.Body), len(next.Body))
			}
		})
	}
}

// TestCheckCollision covers walls on every side and self collision
func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name string
		body []Segment
		want Outcome
	}{
		{"Inside", []Segment{{0, 0}, {25, 0}}, OutcomeNone},
		{"Left wall", []Segment{{-25, 0}, {0, 0}}, OutcomeWall},
		{"Top wall", []Segment{{0, -25}, {0, 0}}, OutcomeWall},
		{"Right wall", []Segment{{500, 0}, {475, 0}}, OutcomeWall},
		{"Bottom wall", []Segment{{0, 500}, {0, 475}}, OutcomeWall},
		{"Bottom right corner", []Segment{{475, 475}, {450, 475}}, OutcomeNone},
		{"Self", []Segment{{50, 50}, {75, 50}, {75, 75}, {50, 75}, {50, 50}}, OutcomeSelf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultBoard())
			s.Body = tt.body
			if got := CheckCollision(s); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestTickLeftWallEndsRound runs the out-of-bounds scenario from (0,0)
func TestTickLeftWallEndsRound(t *testing.T) {
	s := runningState(t)
	s.Body = []Segment{{0, 0}, {0, 25}, {0, 50}, {0, 75}, {0, 100}}
	s.Food = Segment{X: 300, Y: 300}
	s.Direction = DirLeft

	next := Tick(s, newRand(7))

	if next.Head() != (Segment{-25, 0}) {
		t.Errorf("Expected head (-25,0), got %v", next.Head())
	}
	if next.Running() {
		t.Error("Expected round to stop after leaving the board")
	}
	if next.Outcome != OutcomeWall {
		t.Errorf("Expected wall outcome, got %v", next.Outcome)
	}
}

// TestTickSelfCollision reverses through two turns into the body
func TestTickSelfCollision(t *testing.T) {
	s := runningState(t)
	s.Food = Segment{X: 300, Y: 300}
	s.Direction = DirRight
	s = Turn(s, DirDown)
	s = Turn(s, DirLeft)

	next := Tick(s, newRand(8))

	if next.Running() {
		t.Error("Expected round to stop after hitting the body")
	}
	if next.Outcome != OutcomeSelf {
		t.Errorf("Expected self outcome, got %v", next.Outcome)
	}
}

// TestTickStopsOnceOver verifies game over is terminal until reset
func TestTickStopsOnceOver(t *testing.T) {
	s := runningState(t)
	s.Phase = PhaseGameOver
	s.Direction = DirDown

	next := Tick(s, newRand(9))
	if !slices.Equal(next.Body, s.Body) || next.Ticks != s.Ticks {
		t.Error("Expected no movement after game over")
	}
}

// TestTickCountsSteps verifies the per-round tick counter
func TestTickCountsSteps(t *testing.T) {
	s := runningState(t)
	s.Food = Segment{X: 0, Y: 475}
	s.Direction = DirDown
	for i := 0; i < 3; i++ {
		s = Tick(s, newRand(10))
	}
	if s.Ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", s.Ticks)
	}
	if s.Head() != (Segment{100, 75}) {
		t.Errorf("Expected head (100,75), got %v", s.Head())
	}
}

// TestTurnRejectsReversal verifies opposite headings are ignored
func TestTurnRejectsReversal(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, current := range dirs {
		for _, next := range dirs {
			t.Run(current.String()+"->"+next.String(), func(t *testing.T) {
				s := State{Direction: current}
				got := Turn(s, next).Direction
				if next == current.Opposite() {
					if got != current {
						t.Errorf("Reversal %v->%v should be rejected, got %v", current, next, got)
					}
					return
				}
				if got != next {
					t.Errorf("Turn %v->%v should be accepted, got %v", current, next, got)
				}
			})
		}
	}
}

// TestTurnFromUnset accepts any direction before the first move
func TestTurnFromUnset(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if got := Turn(State{}, d).Direction; got != d {
			t.Errorf("Expected %v from unset, got %v", d, got)
		}
	}
	if got := Turn(State{Direction: DirUp}, DirNone).Direction; got != DirUp {
		t.Errorf("DirNone should not clear the heading, got %v", got)
	}
}

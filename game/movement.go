package game

// Advance moves the snake one cell in its current direction. When the new
// head lands on the food the snake grows, the score goes up and new food
// is placed away from the body. An unset direction leaves the state as is.
func Advance(s State, rng Rand) State {
	if s.Direction == DirNone || len(s.Body) == 0 {
		return s
	}

	head := s.Board.Step(s.Head(), s.Direction)
	ate := s.HasFood && head == s.Food

	keep := len(s.Body)
	if !ate {
		keep--
	}
	body := make([]Segment, 0, keep+1)
	body = append(body, head)
	body = append(body, s.Body[:keep]...)
	s.Body = body

	if !ate {
		return s
	}

	s.Score++
	food, ok := PlaceFood(s.Board, s.Body, rng)
	if !ok {
		s.HasFood = false
		s.Outcome = OutcomeBoardFull
		return s
	}
	s.Food = food
	return s
}

// CheckCollision reports whether the head has left the board or run into
// the rest of the body
func CheckCollision(s State) Outcome {
	if len(s.Body) == 0 {
		return OutcomeNone
	}
	head := s.Head()
	if !s.Board.Contains(head) {
		return OutcomeWall
	}
	if occupied(s.Body[1:], head) {
		return OutcomeSelf
	}
	return OutcomeNone
}

// Turn sets the heading unless it is the exact reverse of the current one
func Turn(s State, d Direction) State {
	if d == DirNone || d == s.Direction.Opposite() {
		return s
	}
	s.Direction = d
	return s
}

// Tick runs one simulation step: movement followed by the collision check.
// Nothing happens unless the round is running.
func Tick(s State, rng Rand) State {
	if !s.Running() {
		return s
	}

	s = Advance(s, rng)
	s.Ticks++

	if o := CheckCollision(s); o != OutcomeNone {
		s.Outcome = o
	}
	if s.Outcome != OutcomeNone {
		s.Phase = PhaseGameOver
	}
	return s
}

package game

import "github.com/natikozel/Snake/constants"

// Rand is the randomness source for food placement.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// PlaceFood picks a free grid cell. Random sampling is tried first; once
// FoodSampleAttempts samples have all landed on the body the free cells are
// enumerated, so placement terminates even on a nearly full board.
// ok is false only when no free cell exists.
func PlaceFood(b Board, body []Segment, rng Rand) (food Segment, ok bool) {
	cols, rows := b.Columns(), b.Rows()
	if cols <= 0 || rows <= 0 {
		return Segment{}, false
	}

	for i := 0; i < constants.FoodSampleAttempts; i++ {
		c := Segment{X: rng.IntN(cols) * b.CellSize, Y: rng.IntN(rows) * b.CellSize}
		if !occupied(body, c) {
			return c, true
		}
	}

	taken := make(map[Segment]struct{}, len(body))
	for _, seg := range body {
		taken[seg] = struct{}{}
	}
	capacity := cols*rows - len(taken)
	if capacity < 0 {
		capacity = 0
	}
	free := make([]Segment, 0, capacity)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := Segment{X: x * b.CellSize, Y: y * b.CellSize}
			if _, hit := taken[c]; !hit {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Segment{}, false
	}
	return free[rng.IntN(len(free))], true
}

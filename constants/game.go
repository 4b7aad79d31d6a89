package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed delay between two simulation steps
	TickInterval = 100 * time.Millisecond

	// MinTickInterval is the fastest tick accepted from configuration
	MinTickInterval = 10 * time.Millisecond

	// EventQueueSize bounds input events waiting for the engine goroutine
	EventQueueSize = 64
)

// Board Geometry Constants (pixel units)
const (
	// CellSize is the grid unit all coordinates snap to
	CellSize = 25

	// BoardWidth is the default board width in pixels
	BoardWidth = 500

	// BoardHeight is the default board height in pixels
	BoardHeight = 500

	// InitialSnakeLength is the number of segments of a fresh snake
	InitialSnakeLength = 5
)

// Food Placement Constants
const (
	// FoodSampleAttempts is how many random cells are tried before
	// falling back to enumerating free cells
	FoodSampleAttempts = 64
)

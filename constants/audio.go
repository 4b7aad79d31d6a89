package constants

import "time"

// Eat Sound Timing (two-note coin chime)
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 180 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 140 * time.Millisecond
)

// Game Over Sound Timing (descending saw buzz)
const (
	GameOverSoundStepDuration = 150 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 60 * time.Millisecond
)

package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundGameOver                  // Round ended
	soundTypeCount
)

// String returns the key used in SNAKE_SFX_VOLUMES
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

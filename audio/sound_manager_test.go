package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayGameOver()
	sm.Play(soundTypeCount)
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("Expected manager to report disabled before Initialize")
	}
}

// TestSoundManagerDisabledConfig verifies a disabled config never touches the speaker
func TestSoundManagerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.Enabled() {
		t.Error("Expected manager to stay disabled")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// Speaker initialization may fail in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayEat()
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("Expected manager to be disabled after Cleanup")
	}
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams until the streamer reports it is exhausted
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("Streamer did not finish within %d samples", limit)
	return total
}

// TestOscillatorStaysInRange verifies both channels carry the same bounded wave
func TestOscillatorStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSaw, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples with ok=true, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 100*time.Millisecond, WaveSaw, rate)

	if got := drain(t, osc, 10000); got != 100 {
		t.Errorf("Expected 100 samples, got %d", got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return 0,false, got %d,%v", n, ok)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends quiet
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if samples[99][0] > 0.2 {
		t.Errorf("Expected release near silence, got %f", samples[99][0])
	}
}

// TestSoundEffectsFinite verifies every effect is a finite stream
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			if got := drain(t, s, cfg.SampleRate*2); got == 0 {
				t.Error("Expected some samples")
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

// TestNewVolumeSilent verifies zero volume produces silence
func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 10)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", samples[i][0], i)
		}
	}
}

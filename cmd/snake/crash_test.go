package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type finiCounter struct {
	tcell.Screen
	finis int
}

func (s *finiCounter) Fini() {
	s.finis++
	s.Screen.Fini()
}

func stubCrashExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	crashOutput = &out
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOutput = os.Stderr
		exit = os.Exit
	})
	return &out, &code
}

func newFiniCounter(t *testing.T) *finiCounter {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	return &finiCounter{Screen: sim}
}

// TestRecoverTerminalFromGoroutine panics inside a polling-style goroutine
func TestRecoverTerminalFromGoroutine(t *testing.T) {
	out, code := stubCrashExit(t)
	screen := newFiniCounter(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer recoverTerminal(screen)
		panic("bad event")
	}()
	<-done

	if screen.finis != 1 {
		t.Errorf("Fini calls = %d, want 1", screen.finis)
	}
	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if !strings.Contains(out.String(), "SNAKE CRASHED: bad event") {
		t.Errorf("crash report missing panic value: %q", out.String())
	}
}

// TestRecoverTerminalWithoutPanic leaves the screen alone
func TestRecoverTerminalWithoutPanic(t *testing.T) {
	out, code := stubCrashExit(t)
	screen := newFiniCounter(t)
	t.Cleanup(screen.Screen.Fini)

	func() {
		defer recoverTerminal(screen)
	}()

	if screen.finis != 0 || *code != -1 || out.Len() != 0 {
		t.Errorf("unexpected crash handling: finis=%d code=%d out=%q", screen.finis, *code, out.String())
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// Replaced in tests
var (
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// recoverTerminal restores the terminal and exits when the calling
// goroutine panics. Every goroutine touching the screen defers it.
func recoverTerminal(screen tcell.Screen) {
	r := recover()
	if r == nil {
		return
	}
	screen.Fini()
	fmt.Fprintf(crashOutput, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())
	exit(1)
}

package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/raysphere/terminal"
)

// Finalizer restores a display it owns, e.g. a tcell screen
type Finalizer interface {
	Close() error
}

var (
	crashMu   sync.Mutex
	crashSink Finalizer
)

// RegisterCrashSink sets the display to close before printing a crash
// Pass nil to fall back to raw escape-sequence reset
func RegisterCrashSink(f Finalizer) {
	crashMu.Lock()
	crashSink = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	sink := crashSink
	crashMu.Unlock()

	// Restore terminal to sane state immediately
	if sink != nil {
		sink.Close()
	}
	terminal.EmergencyReset(os.Stdout)

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

package core

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/lifeterm/terminal"
)

// Restorer returns the terminal to its original state
type Restorer interface {
	Restore() error
}

var (
	crashMu       sync.Mutex
	crashTerminal Restorer

	// exit is swapped in tests
	osExit = os.Exit
	exit   = osExit
)

// RegisterTerminal sets the restorer used on crash; nil clears it
func RegisterTerminal(r Restorer) {
	crashMu.Lock()
	crashTerminal = r
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	writeCrash(os.Stderr, r, debug.Stack())
	exit(1)
}

// writeCrash restores the terminal then reports the panic
// Raw mode may still be active, so lines end with \r\n
func writeCrash(w io.Writer, r any, stack []byte) {
	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t == nil || t.Restore() != nil {
		// Fallback for edge cases
		terminal.EmergencyReset(os.Stdout)
	}

	os.Stdout.Sync()

	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", bytes.ReplaceAll(stack, []byte("\n"), []byte("\r\n")))

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
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

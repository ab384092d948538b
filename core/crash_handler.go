package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu       sync.Mutex
	crashFinalize func()
)

// SetCrashFinalizer registers the screen teardown run before a crash report is printed
func SetCrashFinalizer(fn func()) {
	crashMu.Lock()
	crashFinalize = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fin := crashFinalize
	crashMu.Unlock()
	if fin != nil {
		fin()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mANT ATTACK CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

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

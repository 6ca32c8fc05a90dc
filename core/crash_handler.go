package core

import (
	"sync"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()
)

// SetCrashCleanup registers the function run before a crash report is printed
// The terminal edition registers screen.Fini so the stack trace lands on a sane tty
func SetCrashCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// runCleanup invokes the registered cleanup at most once
func runCleanup() {
	cleanupMu.Lock()
	fn := cleanup
	cleanup = nil
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}
}

// Recover hands a panic in the calling goroutine to HandleCrash
// It must be deferred directly: defer core.Recover()
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}

//go:build !js

package core

import (
	"bytes"
	"strings"
	"testing"
)

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 4)

	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashCleanup(nil)
	})
	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	select {
	case c := <-codes:
		t.Errorf("exit called with %d", c)
	default:
	}
}

func TestHandleCrashRunsCleanupOnce(t *testing.T) {
	buf, codes := captureCrash(t)
	calls := 0
	SetCrashCleanup(func() { calls++ })

	HandleCrash("boom")
	HandleCrash("again")

	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("missing crash line in %q", buf.String())
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, codes := captureCrash(t)
	Go(func() { panic("worker failed") })
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRecoverRunsCleanupAndExits(t *testing.T) {
	buf, codes := captureCrash(t)
	cleaned := false
	SetCrashCleanup(func() { cleaned = true })

	func() {
		defer Recover()
		panic("render failed")
	}()

	if !cleaned {
		t.Error("cleanup did not run")
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: render failed") {
		t.Errorf("missing crash line in %q", buf.String())
	}
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRecoverWithoutPanic(t *testing.T) {
	buf, codes := captureCrash(t)
	func() {
		defer Recover()
	}()
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	select {
	case c := <-codes:
		t.Errorf("exit called with %d", c)
	default:
	}
}

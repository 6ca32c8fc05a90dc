//go:build !js

package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Swapped by tests
var (
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	runCleanup()

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	if f, ok := crashOutput.(*os.File); ok {
		f.Sync()
	}

	crashExit(1)
}

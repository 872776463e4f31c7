package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/cyberscape/internal/cli"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(cyberscape.ExitPanic)
		}
	}()

	if os.Getenv(cyberscape.EnvPrefix+"TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(cyberscape.ExitCodeForError(err))
	}
}

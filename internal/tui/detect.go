package tui

import (
	"os"

	"golang.org/x/term"

	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// Mode represents how a session talks to the player.
type Mode int

const (
	// ModeNonInteractive reads one command per line from stdin and prints
	// plain output. Used for scripts, pipes and CI.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen terminal.
	ModeInteractive
)

// EnvNonInteractive forces line mode when set to "1".
const EnvNonInteractive = cyberscape.EnvPrefix + "NON_INTERACTIVE"

// DetectMode determines whether the game should run the full-screen terminal.
//
// Returns ModeNonInteractive if:
//   - CYBERSCAPE_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive reports whether DetectMode selects the full-screen terminal.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

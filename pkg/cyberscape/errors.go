package cyberscape

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, cyberscape.ErrInvalidRole) {
//	    // Ask the player to pick white_hat, grey_hat or black_hat
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRole indicates an unknown player role was requested.
	ErrInvalidRole = errors.New("invalid role")

	// ErrCommandFailed indicates a non-interactive game command reported an error.
	ErrCommandFailed = errors.New("command failed")

	// ErrMountFailed indicates the world could not be exported through FUSE.
	ErrMountFailed = errors.New("mount failed")

	// ErrNotInteractive indicates an interactive session was requested without a terminal.
	ErrNotInteractive = errors.New("not an interactive terminal")
)

// usageErrorMarkers are fragments of cobra/pflag errors caused by bad invocations.
var usageErrorMarkers = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidRole):
		return ExitConfigError
	case errors.Is(err, ErrCommandFailed):
		return ExitCommandFailed
	case errors.Is(err, ErrMountFailed):
		return ExitMountFailed
	case errors.Is(err, ErrNotInteractive):
		return ExitUsageError
	}

	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

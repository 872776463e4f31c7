package cyberscape

// Logger receives diagnostics from the filesystem, the shell and the mount.
// Player-facing output never goes through it. Implementations must be safe
// for concurrent use.
type Logger interface {
	// Verbose records per-command and per-mutation detail, shown only
	// with --verbose.
	Verbose(format string, args ...interface{})

	// Info records session-level events such as mounting.
	Info(format string, args ...interface{})

	// Error records failures the player should know about even when
	// verbose output is off.
	Error(format string, args ...interface{})
}

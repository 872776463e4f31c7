package cyberscape

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Session ended normally
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration, role or world override
	ExitCommandFailed = 11 // A scripted game command reported an error
	ExitMountFailed   = 12 // FUSE export could not be mounted or served
)

const (
	// DefaultUsername is the player name shown in the prompt and by whoami.
	DefaultUsername = "hacker"

	// DefaultHostname is the machine name shown in the prompt and by hostname.
	DefaultHostname = "kali"

	// ConfigFileName is the game configuration file looked up in the working directory.
	ConfigFileName = "cyberscape.yaml"

	// EnvPrefix prefixes every environment variable the game reads.
	EnvPrefix = "CYBERSCAPE_"

	// MaxHistory is the number of command lines kept for up/down recall.
	MaxHistory = 500

	// MaxScrollback is the number of output lines kept by the terminal front end.
	MaxScrollback = 2000
)

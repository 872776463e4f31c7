package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
 +------------------------------------------+
 |   C Y B E R S C A P E                    |
 |   :: aether network field terminal ::    |
 +------------------------------------------+`

var rootCmd = &cobra.Command{
	Use:   "cyberscape",
	Short: "Hacking-themed terminal game on a corrupted virtual filesystem",
	Long: asciiLogo + `

cyberscape drops you into a shell on a compromised machine. Navigate the
in-memory filesystem, scan and parse corrupted files, and restore what you
can. Your alignment (White, Grey or Black Hat) decides which tools you may
use and how often repairs succeed.

Nothing you do touches the real disk. The world lives in memory and is
rebuilt from defaults (plus cyberscape.yaml overrides) on every start.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags, no terminal)
  3  - Panic or unexpected system error
  10 - Invalid configuration, role or world override
  11 - A scripted game command failed
  12 - Mount failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for cyberscape")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&sessionFlags.configDir, "config", ".", "Directory containing cyberscape.yaml")
	rootCmd.PersistentFlags().StringVar(&sessionFlags.logFile, "log-file", "", "Append JSON session events to this file")
	rootCmd.PersistentFlags().StringVarP(&sessionFlags.user, "user", "u", "", "Player name shown in the prompt (env: CYBERSCAPE_USER)")
	rootCmd.PersistentFlags().StringVar(&sessionFlags.host, "host", "", "Machine name shown in the prompt (env: CYBERSCAPE_HOST)")
	rootCmd.PersistentFlags().StringVarP(&sessionFlags.role, "role", "r", "", "Alignment: white, grey or black (env: CYBERSCAPE_ROLE)")

	_ = rootCmd.RegisterFlagCompletionFunc("role", completeRoles)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

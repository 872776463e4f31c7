package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/tui"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Start a game session on a freshly built world.

In a terminal this opens the full-screen shell. If no role is configured
you pick one first. Without a terminal (pipes, CI, CYBERSCAPE_NON_INTERACTIVE=1)
commands are read one per line from stdin and the output is printed plainly.`,
	Example: `  cyberscape play
  cyberscape play --role grey --user neo
  printf 'ls\ncd documents\ntree\n' | cyberscape play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runPlay
}

func runPlay(cmd *cobra.Command, args []string) error {
	interactive := tui.IsInteractive()
	session, err := newGameSession(cmd, interactive)
	if err != nil {
		return err
	}
	defer session.Close()

	if !interactive {
		return playLineMode(cmd, session)
	}

	if session.shell.Role() == cyberscape.RoleNone {
		role, err := tui.PickRole()
		if errors.Is(err, tui.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		session.shell.SetRole(role)
	}
	return tui.RunInteractive(session.shell)
}

// playLineMode runs the session over stdin/stdout. Failed commands are
// part of play and do not fail the process.
func playLineMode(cmd *cobra.Command, session *gameSession) error {
	out := cmd.OutOrStdout()
	for _, line := range tui.Welcome(session.shell.Role()) {
		fmt.Fprintln(out, line)
	}

	failures, err := tui.RunLineMode(session.shell, cmd.InOrStdin(), out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	session.logger.Verbose("line mode finished, %d command(s) reported errors", failures)
	return nil
}

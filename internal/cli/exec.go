package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/tui"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

var execCmd = &cobra.Command{
	Use:   "exec [command-line]...",
	Short: "Run game commands and exit",
	Long: `Run game commands against a fresh world and exit.

Each argument is one command line. With no arguments, command lines are read
from stdin until EOF or exit. Errors go to stderr and the exit code is 11
if any command reported one.`,
	Example: `  cyberscape exec "cd /var/log" "cat auth.log"
  cyberscape exec --role white "scan documents/project_alpha/notes.txt"
  cyberscape exec < script.txt`,
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	session, err := newGameSession(cmd, false)
	if err != nil {
		return err
	}
	defer session.Close()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var failures int
	if len(args) == 0 {
		failures, err = tui.RunLineMode(session.shell, cmd.InOrStdin(), out, errOut)
		if err != nil {
			return err
		}
	} else {
		for _, line := range args {
			result := session.shell.Execute(line)
			tui.PrintOutput(out, errOut, result)
			if result.Failed() {
				failures++
			}
			if result.Exit {
				break
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d command(s) reported errors: %w", failures, cyberscape.ErrCommandFailed)
	}
	return nil
}

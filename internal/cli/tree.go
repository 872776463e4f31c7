package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/tui"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the starting world as a tree",
	Long: `Print the world a new session starts in, after cyberscape.yaml overrides.
Paths resolve from the home directory "~". Use "/" for the system root.`,
	Example: `  cyberscape tree
  cyberscape tree /
  cyberscape tree documents`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeWorldPaths,
	RunE:              runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	session, err := newGameSession(cmd, false)
	if err != nil {
		return err
	}
	defer session.Close()

	line := "tree"
	if len(args) == 1 {
		line += " " + quoteArg(args[0])
	}

	result := session.shell.Execute(line)
	tui.PrintOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)
	if result.Failed() {
		return fmt.Errorf("tree %s: %w", strings.Join(args, " "), cyberscape.ErrCommandFailed)
	}
	return nil
}

// quoteArg single-quotes s for the game's command line parser.
func quoteArg(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

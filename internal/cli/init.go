package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/config"
	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/internal/scaffold"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter cyberscape.yaml",
	Long: `Write a commented cyberscape.yaml and .env.example into dir (default: the
current directory). --user, --host and --role fill in the player section.
Existing files are left alone unless --force is given.`,
	Example: `  cyberscape init
  cyberscape init ./game --user neo --role white`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	verbose := getVerboseFlag(cmd)

	sessionCfg, err := resolveSessionConfig(&config.GameConfig{}, verbose)
	if err != nil {
		return err
	}

	values := scaffold.Values{
		Username: sessionCfg.Username,
		Hostname: sessionCfg.Hostname,
		Role:     strings.TrimSuffix(string(sessionCfg.Role), "_hat"),
	}

	written, err := scaffold.NewScaffolder(logging.NewConsoleLogger(verbose)).WriteConfig(dir, values, initFlags.force)
	if errors.Is(err, scaffold.ErrFileExists) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintf(out, "Created %s\n", path)
	}
	return nil
}

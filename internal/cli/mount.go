package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/mount"
)

var mountFlags struct {
	allowOther bool
	debug      bool
}

var mountCmd = &cobra.Command{
	Use:   "mount <dir>",
	Short: "Expose the starting world as a read-only FUSE filesystem",
	Long: `Mount a read-only snapshot of the starting world at <dir>.

The mount has two directories: home/ (the player's "~") and root/ ("/").
Corruption is reported through the user.cyberscape.corrupted extended
attribute. The command serves until interrupted, then unmounts.`,
	Example: `  cyberscape mount /tmp/aether
  getfattr -n user.cyberscape.corrupted /tmp/aether/home/documents/project_alpha`,
	Args:              RequireMountPoint,
	ValidArgsFunction: completeDirectories,
	RunE:              runMount,
}

func init() {
	rootCmd.AddCommand(mountCmd)

	mountCmd.Flags().BoolVar(&mountFlags.allowOther, "allow-other", false, "Let other users read the mount (needs user_allow_other in /etc/fuse.conf)")
	mountCmd.Flags().BoolVar(&mountFlags.debug, "fuse-debug", false, "Log every FUSE request")
}

func runMount(cmd *cobra.Command, args []string) error {
	session, err := newGameSession(cmd, false)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir := args[0]
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving the world at %s (read-only). Press Ctrl+C to unmount.\n", dir)

	return mount.Mount(ctx, dir, session.shell.FileSystem(), mount.Options{
		AllowOther: mountFlags.allowOther,
		Debug:      mountFlags.debug,
		Logger:     session.logger,
	})
}

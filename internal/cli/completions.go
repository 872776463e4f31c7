package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/cyberscape/internal/shell"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// completeRoles provides shell completion for role flag values.
func completeRoles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, role := range cyberscape.Roles() {
		name := strings.TrimSuffix(string(role), "_hat")
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name+"\t"+role.Description())
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeWorldPaths completes paths inside the starting world, not the
// real filesystem.
func completeWorldPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	gameCfg, err := loadGameConfig(sessionFlags.configDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	world, err := gameCfg.NewFileSystem()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	matches := shell.New(world).Complete("tree " + toComplete)
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

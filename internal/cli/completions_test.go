package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteRoles(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all roles for empty input", func(t *testing.T) {
		completions, directive := completeRoles(cmd, nil, "")
		if len(completions) != 3 {
			t.Errorf("expected 3 completions, got %d", len(completions))
		}
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})

	t.Run("filters by prefix and carries description", func(t *testing.T) {
		completions, _ := completeRoles(cmd, nil, "gr")
		if len(completions) != 1 {
			t.Fatalf("expected 1 completion, got %v", completions)
		}
		name, desc, ok := strings.Cut(completions[0], "\t")
		if !ok || name != "grey" || desc == "" {
			t.Errorf("unexpected completion: %q", completions[0])
		}
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeRoles(cmd, nil, "xyz")
		if len(completions) != 0 {
			t.Errorf("expected 0 completions, got %d", len(completions))
		}
	})
}

func TestCompleteWorldPaths(t *testing.T) {
	cmd := &cobra.Command{}
	sessionFlags.configDir = t.TempDir()
	t.Cleanup(func() { sessionFlags.configDir = "." })

	t.Run("completes home entries", func(t *testing.T) {
		completions, directive := completeWorldPaths(cmd, nil, "d")
		want := []string{"documents/", "downloads/"}
		if strings.Join(completions, ",") != strings.Join(want, ",") {
			t.Errorf("expected %v, got %v", want, completions)
		}
		if directive&cobra.ShellCompDirectiveNoSpace == 0 {
			t.Errorf("expected NoSpace directive, got %v", directive)
		}
	})

	t.Run("completes absolute paths", func(t *testing.T) {
		completions, _ := completeWorldPaths(cmd, nil, "/var/l")
		if len(completions) != 1 || completions[0] != "/var/log/" {
			t.Errorf("expected [/var/log/], got %v", completions)
		}
	})

	t.Run("returns NoFileComp when args already provided", func(t *testing.T) {
		completions, directive := completeWorldPaths(cmd, []string{"documents"}, "")
		if completions != nil || directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected no completions, got %v (%v)", completions, directive)
		}
	})
}

func TestCompleteDirectories(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns FilterDirs directive for first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, nil, "")
		if directive != cobra.ShellCompDirectiveFilterDirs {
			t.Errorf("expected ShellCompDirectiveFilterDirs, got %v", directive)
		}
	})

	t.Run("returns NoFileComp when args already provided", func(t *testing.T) {
		_, directive := completeDirectories(cmd, []string{"./existing"}, "")
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})
}

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/cyberscape/internal/shell"
	"github.com/vvka-141/cyberscape/internal/tui/components"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// ErrCancelled is returned when the player quits the role picker.
var ErrCancelled = errors.New("cancelled by player")

// PickRole runs the role picker and returns the chosen role.
func PickRole(opts ...tea.ProgramOption) (cyberscape.Role, error) {
	if !IsInteractive() {
		return cyberscape.RoleNone, cyberscape.ErrNotInteractive
	}

	final, err := tea.NewProgram(components.NewRolePicker(), opts...).Run()
	if err != nil {
		return cyberscape.RoleNone, fmt.Errorf("role picker: %w", err)
	}
	picker := final.(components.RolePicker)
	if picker.Cancelled() {
		return cyberscape.RoleNone, ErrCancelled
	}
	return picker.Role(), nil
}

// RunInteractive runs the full-screen terminal until the player quits.
func RunInteractive(sh *shell.Shell, opts ...tea.ProgramOption) error {
	if !IsInteractive() {
		return cyberscape.ErrNotInteractive
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewShellModel(sh), opts...).Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// RunLineMode executes one command per line of in until EOF or exit.
// It returns the number of commands that reported an error.
func RunLineMode(sh *shell.Shell, in io.Reader, out, errOut io.Writer) (int, error) {
	failures := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		result := sh.Execute(scanner.Text())
		PrintOutput(out, errOut, result)
		if result.Failed() {
			failures++
		}
		if result.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return failures, fmt.Errorf("reading commands: %w", err)
	}
	return failures, nil
}

// PrintOutput writes error lines to errOut and everything else to out,
// without styling.
func PrintOutput(out, errOut io.Writer, result shell.Output) {
	for _, l := range result.Lines {
		w := out
		if l.Kind == shell.KindError {
			w = errOut
		}
		fmt.Fprintln(w, l.Text)
	}
}

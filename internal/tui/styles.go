package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/cyberscape/internal/shell"
)

// Color palette, terminal green on the default background.
var (
	ColorPrimary   = lipgloss.Color("46")  // Green
	ColorSecondary = lipgloss.Color("250") // Light gray
	ColorSuccess   = lipgloss.Color("34")  // Dark green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorHighlight = lipgloss.Color("51")  // Cyan
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PlainStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	CommentStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	GlitchStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)

// StyleFor returns the style used to render a line of the given kind.
func StyleFor(kind shell.Kind) lipgloss.Style {
	switch kind {
	case shell.KindError:
		return ErrorStyle
	case shell.KindSuccess:
		return SuccessStyle
	case shell.KindWarning:
		return WarningStyle
	case shell.KindHighlight:
		return HighlightStyle
	case shell.KindComment:
		return CommentStyle
	default:
		return PlainStyle
	}
}

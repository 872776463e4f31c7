package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// RolePicker lets the player choose an alignment before the session starts.
type RolePicker struct {
	title     string
	roles     []cyberscape.Role
	cursor    int
	selected  int
	showHelp  bool
	keyMap    pickerKeyMap
	styles    pickerStyles
	submitted bool
	cancelled bool
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type pickerStyles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewRolePicker creates a picker over cyberscape.Roles.
func NewRolePicker() RolePicker {
	return RolePicker{
		title:    "Choose your alignment",
		roles:    cyberscape.Roles(),
		selected: -1,
		showHelp: true,
		keyMap:   defaultPickerKeyMap(),
		styles:   defaultPickerStyles(),
	}
}

// WithShowHelp enables or disables the help text.
func (p RolePicker) WithShowHelp(show bool) RolePicker {
	p.showHelp = show
	return p
}

// Init implements tea.Model.
func (p RolePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p RolePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keyMap.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keyMap.Down):
			if p.cursor < len(p.roles)-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keyMap.Select):
			p.selected = p.cursor
			p.submitted = true
			return p, tea.Quit
		case key.Matches(msg, p.keyMap.Quit):
			p.cancelled = true
			return p, tea.Quit
		}
	}
	return p, nil
}

// View implements tea.Model.
func (p RolePicker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n\n")

	for i, role := range p.roles {
		cursor := "  "
		style := p.styles.Unselected
		symbol := "○"
		if i == p.cursor {
			cursor = ""
			style = p.styles.Selected
			symbol = "●"
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + role.DisplayName()))
		b.WriteString("\n")
		b.WriteString(p.styles.Description.Render(role.Description()))
		b.WriteString("\n")
	}

	if p.showHelp {
		b.WriteString(p.styles.Help.Render("\n↑/↓ navigate • enter select • q quit"))
	}
	return b.String()
}

// Role returns the chosen role, or RoleNone if nothing was chosen.
func (p RolePicker) Role() cyberscape.Role {
	if p.selected >= 0 && p.selected < len(p.roles) {
		return p.roles[p.selected]
	}
	return cyberscape.RoleNone
}

// Cancelled returns true if the player quit without choosing.
func (p RolePicker) Cancelled() bool {
	return p.cancelled
}

// Submitted returns true if the player made a choice.
func (p RolePicker) Submitted() bool {
	return p.submitted
}

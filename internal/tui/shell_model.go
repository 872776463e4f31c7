package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/cyberscape/internal/shell"
	"github.com/vvka-141/cyberscape/internal/tui/components"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// entry is one scrollback line. frames counts the glitch animation frames
// still to play.
type entry struct {
	line   shell.Line
	prompt bool
	frames int
}

// ShellModel is the full-screen terminal: scrollback above a prompt.
type ShellModel struct {
	sh        *shell.Shell
	input     textinput.Model
	viewport  viewport.Model
	completer *components.PathCompleter
	keys      KeyMap
	roll      shell.Roller

	entries []entry
	history []string
	histIdx int
	draft   string

	ready     bool
	quitting  bool
	animating bool // a glitchTickMsg is pending
}

// ModelOption configures a ShellModel.
type ModelOption func(*ShellModel)

// WithGlitchRoller sets the random source of the glitch animation.
func WithGlitchRoller(r shell.Roller) ModelOption {
	return func(m *ShellModel) {
		if r != nil {
			m.roll = r
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *ShellModel) { m.keys = k }
}

// NewShellModel creates a terminal driving sh.
func NewShellModel(sh *shell.Shell, opts ...ModelOption) ShellModel {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(sh.Prompt())
	ti.CharLimit = 1024
	ti.Focus()

	m := ShellModel{
		sh:        sh,
		input:     ti,
		completer: components.NewPathCompleter(sh.Complete),
		keys:      DefaultKeyMap(),
		roll:      shell.NewRoller(0),
	}
	for _, opt := range opts {
		opt(&m)
	}

	for _, text := range Welcome(sh.Role()) {
		m.entries = append(m.entries, entry{line: shell.Line{Text: text, Kind: shell.KindHighlight}})
	}
	return m
}

// Welcome returns the greeting printed when a session starts.
func Welcome(role cyberscape.Role) []string {
	var lines []string
	if role != cyberscape.RoleNone {
		lines = append(lines, "Role selected: "+role.DisplayName())
	}
	return append(lines,
		"Welcome to the Aether Network.",
		"Type 'help' to see available commands.",
	)
}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 2
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.fitInput()
		m.refresh()
		return m, nil

	case glitchTickMsg:
		animating := false
		for i := range m.entries {
			if m.entries[i].frames > 0 {
				m.entries[i].frames--
				animating = animating || m.entries[i].frames > 0
			}
		}
		m.refresh()
		m.animating = animating
		if animating {
			return m, glitchTick()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Complete):
			m.input.SetValue(m.completer.Next(m.input.Value()))
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.completer.Reset()
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.completer.Reset()
			m.recall(1)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.entries = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.PageUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.PageDown()
			return m, nil
		}
		m.completer.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.completer.Reset()

	m.entries = append(m.entries, entry{line: shell.Line{Text: m.sh.Prompt() + line}, prompt: true})
	if strings.TrimSpace(line) != "" {
		if n := len(m.history); n == 0 || m.history[n-1] != line {
			m.history = append(m.history, line)
		}
		if len(m.history) > cyberscape.MaxHistory {
			m.history = m.history[len(m.history)-cyberscape.MaxHistory:]
		}
	}
	m.histIdx = len(m.history)
	m.draft = ""

	out := m.sh.Execute(line)
	if out.Clear {
		m.entries = nil
	}

	glitching := false
	for _, l := range out.Lines {
		e := entry{line: l}
		if l.Glitch {
			e.frames = glitchFrames
			glitching = true
		}
		m.entries = append(m.entries, e)
	}
	if len(m.entries) > cyberscape.MaxScrollback {
		m.entries = m.entries[len(m.entries)-cyberscape.MaxScrollback:]
	}

	m.input.Prompt = PromptStyle.Render(m.sh.Prompt())
	m.fitInput()
	m.refresh()

	if out.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	if glitching && !m.animating {
		m.animating = true
		return m, glitchTick()
	}
	return m, nil
}

// fitInput sizes the text field to the cells left after the prompt.
func (m *ShellModel) fitInput() {
	if !m.ready {
		return
	}
	width := m.viewport.Width - lipgloss.Width(m.sh.Prompt()) - 1
	if width < 1 {
		width = 1
	}
	m.input.Width = width
}

// recall moves through history. delta -1 goes back in time.
func (m *ShellModel) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}

	idx := m.histIdx + delta
	switch {
	case idx < 0:
		idx = 0
	case idx > len(m.history):
		idx = len(m.history)
	}
	m.histIdx = idx

	if idx == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[idx])
	}
	m.input.CursorEnd()
}

func (m *ShellModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())
	m.viewport.GotoBottom()
}

func (m ShellModel) render() string {
	rendered := make([]string, len(m.entries))
	for i, e := range m.entries {
		switch {
		case e.prompt:
			rendered[i] = PlainStyle.Render(e.line.Text)
		case e.frames > 0:
			rendered[i] = GlitchStyle.Render(corrupt(e.line.Text, glitchIntensity, m.roll))
		default:
			rendered[i] = StyleFor(e.line.Kind).Render(e.line.Text)
		}
	}
	return strings.Join(rendered, "\n")
}

// View implements tea.Model.
func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.render())
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.keys.HelpText()))
	return b.String()
}

// Scrollback returns the plain text of every scrollback line.
func (m ShellModel) Scrollback() []string {
	texts := make([]string, len(m.entries))
	for i, e := range m.entries {
		texts[i] = e.line.Text
	}
	return texts
}

// History returns the submitted command lines, oldest first.
func (m ShellModel) History() []string {
	return m.history
}

// Value returns the text currently typed at the prompt.
func (m ShellModel) Value() string {
	return m.input.Value()
}

// Quitting reports whether the player ended the session.
func (m ShellModel) Quitting() bool {
	return m.quitting
}

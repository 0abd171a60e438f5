// Package tui provides the full-screen chime front end. Lines are handed to
// a repl.Session, so statements and meta commands behave exactly as in the
// line REPL.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RonaldDijks/chime/internal/repl"
	"github.com/RonaldDijks/chime/pkg/core/version"
)

// Layout rows taken by everything except the transcript viewport
const (
	headerHeight = 2
	inputHeight  = 3
	footerHeight = 1
)

type entryKind int

const (
	entryInput entryKind = iota
	entryValue
	entryError
	entryInfo
)

// entry is one line group of the transcript
type entry struct {
	kind entryKind
	text string
}

// Model is the bubbletea model of the chime TUI
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	session *repl.Session
	entries []entry
}

// NewModel creates a TUI model driving session
func NewModel(session *repl.Session) Model {
	ti := textinput.New()
	ti.Prompt = session.Prompt()
	ti.Placeholder = "let x = 2 + 3 * 4"
	ti.PromptStyle = PromptStyle
	ti.Focus()
	ti.Width = 76

	return Model{
		input:    ti,
		viewport: viewport.New(80, 20),
		session:  session,
		entries: []entry{
			{kind: entryInfo, text: "Type :help for commands, ctrl+c to quit."},
		},
	}
}

// Run starts the TUI on the terminal and blocks until it exits
func Run(session *repl.Session) error {
	_, err := tea.NewProgram(NewModel(session), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			if m.submit(line) {
				m.quitting = true
				return m, tea.Quit
			}
			m.updateContent()
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := max(1, msg.Height-headerHeight-inputHeight-footerHeight)
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
		m.input.Width = max(10, msg.Width-8)
		m.ready = true
		m.updateContent()
		return m, nil

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs one line through the session and records it. It reports
// whether the line asked to quit.
func (m *Model) submit(line string) bool {
	input := strings.TrimSpace(line)
	output, quit := m.session.HandleLine(input)
	if quit {
		return true
	}

	m.entries = append(m.entries, entry{kind: entryInput, text: input})
	if output == "" {
		return false
	}

	kind := entryValue
	switch {
	case strings.HasPrefix(output, "error: "):
		kind = entryError
	case strings.HasPrefix(input, ":"):
		kind = entryInfo
	}
	m.entries = append(m.entries, entry{kind: kind, text: output})
	return false
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("chime " + version.Chime)

	ast := "off"
	if m.session.ShowAST() {
		ast = "on"
	}
	subtitle := SubtitleStyle.Render(fmt.Sprintf("scope: %s • ast: %s", m.session.ScopeMode(), ast))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (m *Model) renderFooter() string {
	help := "Enter: Evaluate • Ctrl+L: Clear • PgUp/PgDn: Scroll • Ctrl+C: Quit"
	return StatusBarStyle.Width(m.width).Render(help)
}

// Transcript returns the transcript without styling
func (m Model) Transcript() string {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if e.kind == entryInput {
			lines = append(lines, m.session.Prompt()+e.text)
			continue
		}
		lines = append(lines, e.text)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) updateContent() {
	rendered := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		rendered = append(rendered, renderEntry(e, m.session.Prompt()))
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

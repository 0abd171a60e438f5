package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RonaldDijks/chime/foundation/chime"
	mdwlog "github.com/RonaldDijks/chime/foundation/core/log"
	"github.com/RonaldDijks/chime/internal/repl"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	engine, err := chime.New(chime.Options{Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatalf("chime.New() error = %v", err)
	}
	session := repl.NewSession(engine, repl.Options{Logger: mdwlog.Discard()})
	return NewModel(session)
}

// submitLine types line into the input and presses enter
func submitLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_Submit(t *testing.T) {
	m := newTestModel(t)
	m.entries = nil

	var cmd tea.Cmd
	for _, line := range []string{"let x = 2", "x * 3", "   ", "y"} {
		m, cmd = submitLine(t, m, line)
		if isQuit(cmd) {
			t.Fatalf("line %q quit the model", line)
		}
	}

	want := strings.Join([]string{
		"> let x = 2",
		"() : unit",
		"> x * 3",
		"6 : float",
		"> y",
		`error: evaluation error: unknown identifier "y"`,
	}, "\n")

	if got := m.Transcript(); got != want {
		t.Errorf("Transcript() =\n%s\nwant\n%s", got, want)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after submit: %q", m.input.Value())
	}
}

func TestModel_EntryKinds(t *testing.T) {
	m := newTestModel(t)
	m.entries = nil

	m, _ = submitLine(t, m, "1 + 1")
	m, _ = submitLine(t, m, "true + 1")
	m, _ = submitLine(t, m, ":reset")

	want := []entryKind{entryInput, entryValue, entryInput, entryError, entryInput, entryInfo}
	if len(m.entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(m.entries), len(want))
	}
	for i, kind := range want {
		if m.entries[i].kind != kind {
			t.Errorf("entry %d (%q) kind = %d, want %d", i, m.entries[i].text, m.entries[i].kind, kind)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		line string
	}{
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "quit command", msg: tea.KeyMsg{Type: tea.KeyEnter}, line: ":quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.input.SetValue(tt.line)

			updated, cmd := m.Update(tt.msg)
			if !isQuit(cmd) {
				t.Fatal("expected quit command")
			}
			if view := updated.(Model).View(); view != "" {
				t.Errorf("View() after quit = %q, want empty", view)
			}
		})
	}
}

func TestModel_ClearTranscript(t *testing.T) {
	m := newTestModel(t)
	m, _ = submitLine(t, m, "a")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if got := updated.(Model).Transcript(); got != "" {
		t.Errorf("Transcript() after ctrl+l = %q, want empty", got)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	if m.View() != "Loading..." {
		t.Errorf("View() before sizing = %q", m.View())
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.viewport.Width != 100 {
		t.Errorf("viewport width = %d, want 100", m.viewport.Width)
	}
	if want := 30 - headerHeight - inputHeight - footerHeight; m.viewport.Height != want {
		t.Errorf("viewport height = %d, want %d", m.viewport.Height, want)
	}
	if view := m.View(); !strings.Contains(view, "scope: session") {
		t.Errorf("header missing scope mode:\n%s", view)
	}
}

func TestModel_ToggleAST(t *testing.T) {
	m := newTestModel(t)
	m.entries = nil

	m, _ = submitLine(t, m, ":ast")
	m, _ = submitLine(t, m, "2")

	want := "> :ast\n" +
		"syntax tree dump on\n" +
		"> 2\n" +
		"CompilationUnit\n" +
		"  ExpressionStatement\n" +
		"    FloatLiteral 2\n" +
		"2 : float"

	if got := m.Transcript(); got != want {
		t.Errorf("Transcript() =\n%s\nwant\n%s", got, want)
	}
}

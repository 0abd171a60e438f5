package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Transcript styles
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	InfoMessageStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)
)

// renderEntry styles one transcript entry
func renderEntry(e entry, prompt string) string {
	switch e.kind {
	case entryInput:
		return PromptStyle.Render(prompt) + InputEchoStyle.Render(e.text)
	case entryValue:
		return ValueStyle.Render(e.text)
	case entryError:
		return ErrorMessageStyle.Render(e.text)
	default:
		return InfoMessageStyle.Render(e.text)
	}
}

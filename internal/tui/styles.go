package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Canvas  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Stopped lipgloss.Style
	KeyHint lipgloss.Style
}

// newStyles derives the status bar and canvas colors from the palette
// accents.
func newStyles(accent, muted lipgloss.Color) styles {
	return styles{
		Canvas: lipgloss.NewStyle().Foreground(accent),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:  lipgloss.NewStyle().Foreground(muted),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Stopped: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")),
		KeyHint: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by styled text output. When
// styling is off every style renders as plain text.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the style set. styled=false yields passthrough styles
// for non-terminal destinations.
func NewStyles(styled bool) *Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{Title: plain, Success: plain, Muted: plain, Error: plain}
	}
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

package tui

import (
	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive solver and blocks until the user exits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package commands

import (
	"github.com/ShayneJG/number-combination-solver/internal/tui"
	"github.com/spf13/cobra"
)

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the full-screen interactive solver",
		Long: `Start a full-screen terminal UI. Fill in the search form, toggle
operators, and watch solutions arrive without re-running the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
}

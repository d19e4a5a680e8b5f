package commands

import (
	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	"github.com/ShayneJG/number-combination-solver/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext builds the shared dependencies a command needs: the
// loaded configuration and a renderer bound to the command's streams.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Renderer: r,
	}, nil
}

// getConfig returns the current configuration, falling back to defaults
// when commands run outside the root command's PersistentPreRunE (tests
// exercise commands directly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		MaxInt:       config.DefaultMaxInt,
		Multiply:     true,
		Subtract:     true,
		Divide:       true,
		MaxNumbers:   config.DefaultMaxNumbers,
		TopN:         config.DefaultTopN,
		OutputFormat: config.DefaultOutput,
	}
}

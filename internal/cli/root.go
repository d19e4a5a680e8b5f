// Package cli provides the command-line interface for the solver.
package cli

import (
	"fmt"
	"os"

	"github.com/ShayneJG/number-combination-solver/internal/cli/commands"
	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ncs",
		Short: "ncs - Number Combination Solver",
		Long: `ncs searches for short arithmetic expressions over whole numbers that
evaluate exactly to a target value.

The operand pool, operator set, search depth, and result count are all
configurable through flags, environment variables, or a config file.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Number Combination Solver
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ncs.yaml)")
	rootCmd.PersistentFlags().Int("max-int", config.DefaultMaxInt, "Largest operand value (pool is 1..max-int)")
	rootCmd.PersistentFlags().Int64Slice("exclude", nil, "Operand values to remove from the pool (repeatable)")
	rootCmd.PersistentFlags().Bool("multiply", true, "Allow multiplication")
	rootCmd.PersistentFlags().Bool("subtract", true, "Allow subtraction")
	rootCmd.PersistentFlags().Bool("divide", true, "Allow exact division")
	rootCmd.PersistentFlags().Bool("exponent", false, "Allow exponentiation")
	rootCmd.PersistentFlags().Int("max-numbers", config.DefaultMaxNumbers, "Most operands per expression")
	rootCmd.PersistentFlags().Int("top", config.DefaultTopN, "Number of solutions to report")
	rootCmd.PersistentFlags().Bool("exhaustive", false, "Keep every proof per value instead of a capped sample")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress messages")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewUICommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/ShayneJG/number-combination-solver/pkg/solver"
	"github.com/spf13/cobra"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <target>",
		Short: "Search for expressions that evaluate to a target",
		Long: `Search for short arithmetic expressions that evaluate exactly to the
given target, built from whole numbers and the enabled operators.

Solutions are ranked by operator count and deduplicated, so "2 + 3" and
"3 + 2" count as one solution.`,
		Example: `  # Find expressions for 24 with the default settings
  ncs solve 24

  # Allow exponentiation and search deeper
  ncs solve 729 --exponent --max-numbers 8

  # Restrict the operand pool
  ncs solve 17 --max-int 10 --exclude 7 --exclude 9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid target %q: expected an integer", args[0])
			}
			return runSolve(cmd, target)
		},
	}
}

func runSolve(cmd *cobra.Command, target int64) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if cmdCtx.Cfg.AlphabetEmpty() {
		return fmt.Errorf("no numbers left to search: every value from 1 to %d is excluded", cmdCtx.Cfg.MaxInt)
	}

	opts := cmdCtx.Cfg.SolverOptions(target)
	if !cmdCtx.Cfg.Quiet {
		opts.Progress = cmdCtx.Renderer.Progress
	}

	solutions, err := solver.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return cmdCtx.Renderer.Solutions(target, solutions)
}

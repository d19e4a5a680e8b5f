package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. Build date and commit are
// stamped in by the build; "unknown" marks a plain `go build`.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display ncs version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "ncs v%s\n", version)
			_, _ = fmt.Fprintln(out, "Number Combination Solver built with Go")
			_, _ = fmt.Fprintf(out, "  built:  %s\n", buildDate)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", gitCommit)
		},
	}
}

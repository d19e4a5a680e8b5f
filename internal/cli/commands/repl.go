package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	"github.com/ShayneJG/number-combination-solver/pkg/solver"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive solver session",
		Long: `Start an interactive session. Type a target number to search for it,
or a dot-command to inspect and change the search settings.`,
		Example: `  ncs repl

  ncs> 24
  ncs> .set max-int 10
  ncs> .set exponent on
  ncs> 729`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	// Settings are session-local: dot-commands mutate this copy, not the
	// loaded configuration.
	cfg := *cmdCtx.Cfg

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".ncs_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ncs> ",
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Number Combination Solver")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a target number, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, &cfg, line); quit {
				break
			}
			continue
		}

		target, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %q is not a whole number or dot-command\n", line)
			continue
		}

		if err := solveInREPL(cmd, cmdCtx, &cfg, target); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func solveInREPL(cmd *cobra.Command, cmdCtx *CommandContext, cfg *config.Config, target int64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.AlphabetEmpty() {
		return fmt.Errorf("no numbers left to search: every value from 1 to %d is excluded", cfg.MaxInt)
	}

	opts := cfg.SolverOptions(target)
	if !cfg.Quiet {
		opts.Progress = cmdCtx.Renderer.Progress
	}

	solutions, err := solver.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Solutions(target, solutions)
}

// handleDotCommand processes a dot-command line, returning true when the
// session should end.
func handleDotCommand(cmd *cobra.Command, cfg *config.Config, line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())

	case ".show":
		printSettings(cmd.OutOrStdout(), cfg)

	case ".set":
		if len(parts) != 3 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .set <key> <value>")
			break
		}
		if err := setOption(cfg, parts[1], parts[2]); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command %s (try .help)\n", parts[0])
	}
	return false
}

func setOption(cfg *config.Config, key, value string) error {
	switch key {
	case "max-int", "max-numbers", "top":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s wants a positive integer, got %q", key, value)
		}
		switch key {
		case "max-int":
			cfg.MaxInt = n
		case "max-numbers":
			cfg.MaxNumbers = n
		case "top":
			cfg.TopN = n
		}
		return nil

	case "exclude":
		if value == "none" {
			cfg.Exclude = nil
			return nil
		}
		var excluded []int64
		for _, field := range strings.Split(value, ",") {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return fmt.Errorf("exclude wants comma-separated integers or none, got %q", value)
			}
			excluded = append(excluded, v)
		}
		cfg.Exclude = excluded
		return nil

	case "multiply", "subtract", "divide", "exponent", "exhaustive", "quiet":
		on, err := parseToggle(value)
		if err != nil {
			return err
		}
		switch key {
		case "multiply":
			cfg.Multiply = on
		case "subtract":
			cfg.Subtract = on
		case "divide":
			cfg.Divide = on
		case "exponent":
			cfg.Exponent = on
		case "exhaustive":
			cfg.Exhaustive = on
		case "quiet":
			cfg.Quiet = on
		}
		return nil
	}
	return fmt.Errorf("unknown setting %q (try .help)", key)
}

func parseToggle(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

func printSettings(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintf(w, "max-int     %d\n", cfg.MaxInt)
	_, _ = fmt.Fprintf(w, "exclude     %s\n", formatExclusions(cfg.Exclude))
	_, _ = fmt.Fprintf(w, "multiply    %s\n", onOff(cfg.Multiply))
	_, _ = fmt.Fprintf(w, "subtract    %s\n", onOff(cfg.Subtract))
	_, _ = fmt.Fprintf(w, "divide      %s\n", onOff(cfg.Divide))
	_, _ = fmt.Fprintf(w, "exponent    %s\n", onOff(cfg.Exponent))
	_, _ = fmt.Fprintf(w, "max-numbers %d\n", cfg.MaxNumbers)
	_, _ = fmt.Fprintf(w, "top         %d\n", cfg.TopN)
	_, _ = fmt.Fprintf(w, "exhaustive  %s\n", onOff(cfg.Exhaustive))
	_, _ = fmt.Fprintf(w, "quiet       %s\n", onOff(cfg.Quiet))
}

func formatExclusions(values []int64) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  <number>              Search for expressions equal to <number>")
	_, _ = fmt.Fprintln(w, "  .set <key> <value>    Change a setting for this session")
	_, _ = fmt.Fprintln(w, "  .show                 Show current settings")
	_, _ = fmt.Fprintln(w, "  .help                 Show this help")
	_, _ = fmt.Fprintln(w, "  .quit                 Exit the session")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Settings:")
	_, _ = fmt.Fprintln(w, "  max-int <n>           Largest operand value")
	_, _ = fmt.Fprintln(w, "  exclude <a,b,..|none> Operand values to skip")
	_, _ = fmt.Fprintln(w, "  multiply|subtract|divide|exponent <on|off>")
	_, _ = fmt.Fprintln(w, "  max-numbers <n>       Most operands per expression")
	_, _ = fmt.Fprintln(w, "  top <n>               Number of solutions to keep")
	_, _ = fmt.Fprintln(w, "  exhaustive <on|off>   Keep every proof per value")
	_, _ = fmt.Fprintln(w, "  quiet <on|off>        Suppress progress messages")
}

func replCompleter() *readline.PrefixCompleter {
	toggle := func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{
			readline.PcItem("on"),
			readline.PcItem("off"),
		}
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".show"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem(".set",
			readline.PcItem("max-int"),
			readline.PcItem("exclude"),
			readline.PcItem("multiply", toggle()...),
			readline.PcItem("subtract", toggle()...),
			readline.PcItem("divide", toggle()...),
			readline.PcItem("exponent", toggle()...),
			readline.PcItem("max-numbers"),
			readline.PcItem("top"),
			readline.PcItem("exhaustive", toggle()...),
			readline.PcItem("quiet", toggle()...),
		),
	)
}

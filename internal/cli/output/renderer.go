// Package output renders solver results for terminals, scripts, and
// machine consumers. The renderer adapts to its destination: styled tables
// on a TTY, markdown when piped, JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/ShayneJG/number-combination-solver/pkg/solver"
)

// Mode selects the output format.
type Mode string

// Supported output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes solver results to an output stream in a fixed mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to text when out is a
// terminal and markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" || mode == ModeAuto {
		if isTerminal(out) {
			mode = ModeText
		} else {
			mode = ModeMarkdown
		}
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: NewStyles(mode == ModeText),
	}
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// solutionRecord is the JSON projection of a Solution.
type solutionRecord struct {
	Expression string  `json:"expression"`
	Result     int64   `json:"result"`
	Operands   []int64 `json:"operands"`
	OpCount    int     `json:"op_count"`
}

// Solutions renders a result list for the given target.
func (r *Renderer) Solutions(target int64, sols []solver.Solution) error {
	if r.mode == ModeJSON {
		records := make([]solutionRecord, 0, len(sols))
		for _, s := range sols {
			records = append(records, solutionRecord{
				Expression: s.Expression,
				Result:     s.Result,
				Operands:   s.Operands,
				OpCount:    s.OpCount,
			})
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(sols) == 0 {
		_, err := fmt.Fprintf(r.out, "%s\n", r.styles.Muted.Render(fmt.Sprintf("No solutions found for %d.", target)))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"#", "Expression", "Result", "Operands", "Operators"})
	for i, s := range sols {
		t.AppendRow(table.Row{i + 1, s.Expression, s.Result, formatOperands(s.Operands), s.OpCount})
	}

	if r.mode == ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	_, err := fmt.Fprintf(r.out, "(%d solutions)\n", len(sols))
	return err
}

// Progress writes a search progress notice to the error stream so result
// output stays machine-parseable.
func (r *Renderer) Progress(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Muted.Render(msg))
}

// Info writes an informational line to the output stream.
func (r *Renderer) Info(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

// formatOperands joins operand values with commas.
func formatOperands(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}

// isTerminal reports whether w is backed by a TTY.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Package main provides tests for the ncs CLI.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ShayneJG/number-combination-solver/internal/cli"
	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
)

func newTestCmd(args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	config.ResetConfig()
	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out, errOut, err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := newTestCmd("version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(out.String(), "ncs") {
		t.Errorf("version output should contain 'ncs', got: %s", out.String())
	}
}

func TestHelpCommand(t *testing.T) {
	out, _, err := newTestCmd("--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	for _, expected := range []string{"solve", "repl", "ui", "version"} {
		if !strings.Contains(out.String(), expected) {
			t.Errorf("help output should contain %q, got: %s", expected, out.String())
		}
	}
}

func TestSolveCommand(t *testing.T) {
	out, _, err := newTestCmd("solve", "15", "--max-int", "5", "--quiet", "-o", "text")
	if err != nil {
		t.Errorf("solve command error = %v", err)
	}
	if !strings.Contains(out.String(), "5 * 3") {
		t.Errorf("solve output should contain '5 * 3', got: %s", out.String())
	}
}

func TestSolveCommandJSON(t *testing.T) {
	out, _, err := newTestCmd("solve", "4", "--max-int", "3", "--quiet", "-o", "json")
	if err != nil {
		t.Errorf("solve --output json error = %v", err)
	}

	var records []struct {
		Expression string  `json:"expression"`
		Result     int64   `json:"result"`
		Operands   []int64 `json:"operands"`
		OpCount    int     `json:"op_count"`
	}
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("solve output is not valid JSON: %v\noutput: %s", err, out.String())
	}
	if len(records) == 0 {
		t.Fatal("expected at least one solution for 4")
	}
	for _, rec := range records {
		if rec.Result != 4 {
			t.Errorf("result = %d, want 4 (%s)", rec.Result, rec.Expression)
		}
	}
}

func TestSolveCommandProgress(t *testing.T) {
	_, errOut, err := newTestCmd("solve", "7", "--max-int", "5", "-o", "text")
	if err != nil {
		t.Errorf("solve command error = %v", err)
	}
	if !strings.Contains(errOut.String(), "Searching 1 numbers...") {
		t.Errorf("progress should go to stderr, got: %s", errOut.String())
	}
}

func TestSolveCommandQuiet(t *testing.T) {
	_, errOut, err := newTestCmd("solve", "7", "--max-int", "5", "--quiet", "-o", "text")
	if err != nil {
		t.Errorf("solve command error = %v", err)
	}
	if strings.Contains(errOut.String(), "Searching") {
		t.Errorf("--quiet should suppress progress, got: %s", errOut.String())
	}
}

func TestSolveCommandInvalidTarget(t *testing.T) {
	_, _, err := newTestCmd("solve", "banana")
	if err == nil {
		t.Error("expected error for non-integer target")
	}
}

func TestSolveCommandEmptyAlphabet(t *testing.T) {
	_, _, err := newTestCmd("solve", "5", "--max-int", "2", "--exclude", "1", "--exclude", "2", "--quiet")
	if err == nil {
		t.Error("expected error when every operand is excluded")
	}
}

func TestSolveCommandBadFlagValue(t *testing.T) {
	_, _, err := newTestCmd("solve", "5", "--max-int", "0", "--quiet")
	if err == nil {
		t.Error("expected error for --max-int 0")
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := newTestCmd("frobnicate")
	if err == nil {
		t.Error("expected error for unknown command")
	}
}

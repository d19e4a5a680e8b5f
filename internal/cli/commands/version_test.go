package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runVersion(t *testing.T, version, buildDate, gitCommit string) string {
	t.Helper()
	cmd := NewVersionCommand(version, buildDate, gitCommit)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return buf.String()
}

func TestVersionCommandOutput(t *testing.T) {
	output := runVersion(t, "1.2.3", "2026-08-28", "deadbeef")

	for _, want := range []string{
		"ncs v1.2.3",
		"Number Combination Solver",
		"built:  2026-08-28",
		"commit: deadbeef",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestVersionCommandUnstampedBuild(t *testing.T) {
	output := runVersion(t, "dev", "unknown", "unknown")

	if !strings.Contains(output, "ncs vdev") {
		t.Errorf("output should contain 'ncs vdev', got: %s", output)
	}
	if strings.Count(output, "unknown") != 2 {
		t.Errorf("both build fields should fall back to 'unknown', got: %s", output)
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "unknown", "unknown")

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

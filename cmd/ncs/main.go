// Package main provides the ncs command-line entry point.
package main

import (
	"os"

	"github.com/ShayneJG/number-combination-solver/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package config provides configuration management for the ncs CLI.
//
// Configuration is layered with koanf: built-in defaults, then an optional
// yaml config file, then NCS_-prefixed environment variables, then
// explicitly-set command-line flags.
package config

import (
	"github.com/ShayneJG/number-combination-solver/pkg/expr"
	"github.com/ShayneJG/number-combination-solver/pkg/solver"
)

// Config holds all CLI configuration options.
type Config struct {
	MaxInt       int     `koanf:"max_int"`
	Exclude      []int64 `koanf:"exclude"`
	Multiply     bool    `koanf:"multiply"`
	Subtract     bool    `koanf:"subtract"`
	Divide       bool    `koanf:"divide"`
	Exponent     bool    `koanf:"exponent"`
	MaxNumbers   int     `koanf:"max_numbers"`
	TopN         int     `koanf:"top_n"`
	Exhaustive   bool    `koanf:"exhaustive"`
	Quiet        bool    `koanf:"quiet"`
	Verbose      bool    `koanf:"verbose"`
	OutputFormat string  `koanf:"output"`
}

// Default configuration values.
const (
	DefaultMaxInt     = solver.DefaultMaxInt
	DefaultMaxNumbers = solver.DefaultMaxNumbers
	DefaultTopN       = solver.DefaultTopN
	DefaultOutput     = "auto" // TTY=text, non-TTY=markdown
)

// SolverOptions translates the configuration into search options for the
// given target. The progress sink is left nil; callers wire their own.
func (c *Config) SolverOptions(target int64) solver.Options {
	return solver.Options{
		Target:     target,
		MaxInt:     c.MaxInt,
		Exclude:    append([]int64(nil), c.Exclude...),
		MaxNumbers: c.MaxNumbers,
		TopN:       c.TopN,
		Exhaustive: c.Exhaustive,
		Operators: expr.OpSet{
			Multiply:     c.Multiply,
			Subtract:     c.Subtract,
			Divide:       c.Divide,
			Exponentiate: c.Exponent,
		},
	}
}

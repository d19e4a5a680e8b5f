package solver

import (
	"fmt"

	"github.com/ShayneJG/number-combination-solver/pkg/expr"
)

// Default search limits.
const (
	DefaultMaxInt     = 25
	DefaultMaxNumbers = 6
	DefaultTopN       = 5

	// defaultProofCap bounds proofs kept per value in heuristic mode.
	defaultProofCap = 3
)

// ProgressFunc receives a text notice at the start of each search level.
// It is invoked inline and never affects results.
type ProgressFunc func(msg string)

// Options configures one search invocation.
type Options struct {
	// Target is the value every returned expression must reach.
	Target int64
	// MaxInt bounds the operand alphabet to 1..MaxInt.
	MaxInt int
	// Exclude removes operand values from the alphabet.
	Exclude []int64
	// Operators selects the optional operators; addition is always on.
	Operators expr.OpSet
	// MaxNumbers caps how many operand slots an expression may use.
	MaxNumbers int
	// TopN caps how many solutions are returned.
	TopN int
	// Exhaustive lifts the per-value proof cap, trading memory and time
	// for a guarantee that a minimal solution within MaxNumbers is found.
	Exhaustive bool
	// Progress, if non-nil, observes level starts.
	Progress ProgressFunc
}

// DefaultOptions returns Options with the standard limits and multiply,
// subtract, and divide enabled.
func DefaultOptions(target int64) Options {
	return Options{
		Target:     target,
		MaxInt:     DefaultMaxInt,
		MaxNumbers: DefaultMaxNumbers,
		TopN:       DefaultTopN,
		Operators: expr.OpSet{
			Multiply: true,
			Subtract: true,
			Divide:   true,
		},
	}
}

// validate rejects malformed limits before any search work starts. An
// alphabet emptied by exclusions is not an error; it yields an empty
// result list like any other unreachable target.
func (o Options) validate() error {
	if o.MaxInt <= 0 {
		return fmt.Errorf("max operand value must be positive, got %d", o.MaxInt)
	}
	if o.MaxNumbers <= 0 {
		return fmt.Errorf("max operand count must be positive, got %d", o.MaxNumbers)
	}
	if o.TopN <= 0 {
		return fmt.Errorf("result count must be positive, got %d", o.TopN)
	}
	return nil
}

// alphabet derives the operand values 1..MaxInt minus exclusions.
func (o Options) alphabet() []int64 {
	excluded := make(map[int64]bool, len(o.Exclude))
	for _, v := range o.Exclude {
		excluded[v] = true
	}
	var out []int64
	for v := int64(1); v <= int64(o.MaxInt); v++ {
		if !excluded[v] {
			out = append(out, v)
		}
	}
	return out
}

// proofCap returns the per-value proof bound: 0 (unbounded) in exhaustive
// mode, defaultProofCap otherwise.
func (o Options) proofCap() int {
	if o.Exhaustive {
		return 0
	}
	return defaultProofCap
}

// Package solver finds short arithmetic expressions over a bounded operand
// alphabet that evaluate exactly to a target integer. It enumerates small
// operand counts directly and meets in the middle for larger ones, pruning
// inexact division and deduplicating commutatively-equivalent expressions.
package solver

import (
	"sort"

	"github.com/ShayneJG/number-combination-solver/pkg/expr"
)

// Solution is one expression that reaches the target. Identity is the
// canonical key, computed once at construction: two differently-formatted
// but commutatively-equivalent expressions are the same Solution.
type Solution struct {
	// Expression is the formatted display string.
	Expression string
	// Result is the evaluated value, always equal to the search target.
	Result int64
	// Operands holds the sorted unique operand values used.
	Operands []int64
	// OpCount is the number of operator applications.
	OpCount int

	key string
}

// NewSolution builds a Solution, deriving its canonical key. operands must
// already be sorted and unique.
func NewSolution(expression string, result int64, operands []int64, opCount int) Solution {
	return Solution{
		Expression: expression,
		Result:     result,
		Operands:   operands,
		OpCount:    opCount,
		key:        expr.CanonicalKey(expression),
	}
}

// Key returns the canonical key the Solution is identified by.
func (s Solution) Key() string { return s.key }

// less orders solutions by operator count, then by how many distinct
// operands they need, then by key so truncation is deterministic.
func (s Solution) less(other Solution) bool {
	if s.OpCount != other.OpCount {
		return s.OpCount < other.OpCount
	}
	if len(s.Operands) != len(other.Operands) {
		return len(s.Operands) < len(other.Operands)
	}
	return s.key < other.key
}

// solutionSet deduplicates solutions by canonical key. The first solution
// seen for a key wins.
type solutionSet map[string]Solution

func (set solutionSet) add(s Solution) {
	if _, seen := set[s.key]; !seen {
		set[s.key] = s
	}
}

// bestOpCount returns the minimum operator count in the set. The set must
// be non-empty.
func (set solutionSet) bestOpCount() int {
	best := -1
	for _, s := range set {
		if best < 0 || s.OpCount < best {
			best = s.OpCount
		}
	}
	return best
}

// ranked returns the set's solutions in ranking order.
func (set solutionSet) ranked() []Solution {
	out := make([]Solution, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// mergeOperands returns the sorted unique union of two operand sets.
func mergeOperands(a, b []int64) []int64 {
	merged := make([]int64, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return sortedUnique(merged)
}

// sortedUnique sorts values and drops duplicates.
func sortedUnique(values []int64) []int64 {
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	out := values[:0]
	var prev int64
	for i, v := range values {
		if i > 0 && v == prev {
			continue
		}
		out = append(out, v)
		prev = v
	}
	return out
}

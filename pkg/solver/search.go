package solver

import (
	"context"
	"fmt"

	"github.com/ShayneJG/number-combination-solver/pkg/expr"
)

// directLevelMax is the largest operand count searched by direct brute
// force; larger levels meet in the middle.
const directLevelMax = 4

// Search finds expressions evaluating exactly to opts.Target. It iterates
// operand counts from 1 to opts.MaxNumbers, merges each level's finds into
// a running set deduplicated by canonical key, stops early once more levels
// cannot improve the ranking, and returns at most opts.TopN solutions
// ordered by (operator count, distinct operand count).
//
// An empty alphabet or an unreachable target yields an empty slice, not an
// error. Search fails only for malformed limits or context cancellation;
// cancellation is checked at the start of each level and before each
// half-split generation.
func Search(ctx context.Context, opts Options) ([]Solution, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	alphabet := opts.alphabet()
	ops := opts.Operators.Ops()
	maxPerValue := opts.proofCap()
	found := make(solutionSet)

	for count := 1; count <= opts.MaxNumbers; count++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Progress != nil {
			opts.Progress(fmt.Sprintf("Searching %d numbers...", count))
		}

		var err error
		if count <= directLevelMax {
			err = directLevel(ctx, found, opts.Target, alphabet, ops, count)
		} else {
			err = crossLevel(ctx, found, opts.Target, alphabet, ops, count, maxPerValue)
		}
		if err != nil {
			return nil, err
		}

		// Every solution at level n uses exactly n-1 operators, so once
		// the best find beats what deeper levels can produce there is
		// nothing left to improve; with a full top-N in hand the level
		// just searched cannot be beaten either.
		if len(found) > 0 {
			best := found.bestOpCount()
			if best <= count-1 {
				if len(found) >= opts.TopN {
					break
				}
				if best < count-1 {
					break
				}
			}
		}
	}

	ranked := found.ranked()
	if len(ranked) > opts.TopN {
		ranked = ranked[:opts.TopN]
	}
	return ranked, nil
}

// directLevel brute-forces every operand/operator tuple with exactly count
// operand slots, keeping the tuples that reach target.
func directLevel(ctx context.Context, found solutionSet, target int64, alphabet []int64, ops []expr.Op, count int) error {
	if count == 1 {
		for _, n := range alphabet {
			if n == target {
				found.add(NewSolution(expr.Format([]int64{n}, nil), n, []int64{n}, 0))
			}
		}
		return nil
	}
	if len(alphabet) == 0 || len(ops) == 0 {
		return nil
	}

	nums := make([]int64, count)
	seq := make([]expr.Op, count-1)
	numIdx := make([]int, count)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, j := range numIdx {
			nums[i] = alphabet[j]
		}

		opIdx := make([]int, count-1)
		for {
			for i, j := range opIdx {
				seq[i] = ops[j]
			}
			if v, ok := expr.Evaluate(nums, seq); ok && v == target {
				found.add(NewSolution(
					expr.Format(nums, seq),
					target,
					sortedUnique(append([]int64(nil), nums...)),
					count-1,
				))
			}
			if !advance(opIdx, len(ops)) {
				break
			}
		}

		if !advance(numIdx, len(alphabet)) {
			return nil
		}
	}
}

// crossLevel searches one meet-in-the-middle level: for every split of
// count into left ≤ right it generates both halves' value maps and probes
// each side for complements that reach target under the enabled operators.
func crossLevel(ctx context.Context, found solutionSet, target int64, alphabet []int64, ops []expr.Op, count, maxPerValue int) error {
	hasSub := containsOp(ops, expr.OpSub)
	hasMul := containsOp(ops, expr.OpMul)
	hasDiv := containsOp(ops, expr.OpDiv)

	for left := 1; left <= count/2; left++ {
		right := count - left
		if err := ctx.Err(); err != nil {
			return err
		}

		leftVals, rightVals, err := generateHalves(ctx, alphabet, left, right, ops, maxPerValue)
		if err != nil {
			return err
		}

		emit := func(a partial, op expr.Op, b partial) {
			found.add(NewSolution(
				expr.Compose(a.expression, op, b.expression),
				target,
				mergeOperands(a.operands, b.operands),
				a.opCount+b.opCount+1,
			))
		}

		for _, lv := range sortedValues(leftVals) {
			leftProofs := leftVals[lv]

			// left + right = target. The complement arithmetic itself must
			// not wrap, or the probe finds values that only pretend to
			// reach target.
			if need, ok := expr.CheckedSub(target, lv); ok {
				if rightProofs, ok := rightVals[need]; ok {
					for _, lp := range leftProofs {
						for _, rp := range rightProofs {
							emit(lp, expr.OpAdd, rp)
						}
					}
				}
			}

			// left - right = target
			if hasSub {
				if need, ok := expr.CheckedSub(lv, target); ok {
					if rightProofs, ok := rightVals[need]; ok {
						for _, lp := range leftProofs {
							for _, rp := range rightProofs {
								emit(lp, expr.OpSub, rp)
							}
						}
					}
				}
			}

			// left * right = target
			if need, ok := mulComplement(target, lv); hasMul && ok {
				if rightProofs, ok := rightVals[need]; ok {
					for _, lp := range leftProofs {
						for _, rp := range rightProofs {
							emit(lp, expr.OpMul, rp)
						}
					}
				}
			}

			// left / right = target
			if need, ok := divComplement(lv, target); hasDiv && ok {
				if rightProofs, ok := rightVals[need]; ok {
					for _, lp := range leftProofs {
						for _, rp := range rightProofs {
							emit(lp, expr.OpDiv, rp)
						}
					}
				}
			}
		}

		// Subtraction and division are not commutative; probe the right
		// map against the left map to cover the reversed operand order.
		for _, rv := range sortedValues(rightVals) {
			rightProofs := rightVals[rv]

			// right - left = target
			if hasSub {
				if need, ok := expr.CheckedSub(rv, target); ok {
					if leftProofs, ok := leftVals[need]; ok {
						for _, rp := range rightProofs {
							for _, lp := range leftProofs {
								emit(rp, expr.OpSub, lp)
							}
						}
					}
				}
			}

			// right / left = target
			if need, ok := divComplement(rv, target); hasDiv && ok {
				if leftProofs, ok := leftVals[need]; ok {
					for _, rp := range rightProofs {
						for _, lp := range leftProofs {
							emit(rp, expr.OpDiv, lp)
						}
					}
				}
			}
		}
	}
	return nil
}

// mulComplement returns the factor f with lv * f == target, if one exists.
// The multiply-back check rejects the MinInt64 / -1 quotient wrap.
func mulComplement(target, lv int64) (int64, bool) {
	if lv == 0 || target%lv != 0 {
		return 0, false
	}
	f := target / lv
	if v, ok := expr.CheckedMul(lv, f); !ok || v != target {
		return 0, false
	}
	return f, true
}

// divComplement returns the divisor d with lv / d == target, if one exists.
func divComplement(lv, target int64) (int64, bool) {
	if target == 0 || lv%target != 0 {
		return 0, false
	}
	d := lv / target
	if d == 0 {
		return 0, false
	}
	if v, ok := expr.CheckedMul(d, target); !ok || v != lv {
		return 0, false
	}
	return d, true
}

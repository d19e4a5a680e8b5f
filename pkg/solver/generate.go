package solver

import (
	"context"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ShayneJG/number-combination-solver/pkg/expr"
)

// directCutoff is the largest slot count enumerated exhaustively; larger
// counts split into halves and meet in the middle.
const directCutoff = 3

// partial is one proof that a value is reachable with a fixed number of
// operand slots. Partials are scoped to a single generate call.
type partial struct {
	value      int64
	expression string
	operands   []int64 // sorted unique
	opCount    int
}

// valueMap maps each achievable value to its retained proofs.
type valueMap map[int64][]partial

// generate produces the value→proofs mapping for expressions that use
// exactly count operand slots. maxPerValue bounds the proofs kept per value;
// 0 keeps all of them. Counts above directCutoff recurse on two halves that
// share nothing and run concurrently, then compose across the split.
//
// Maps are iterated in ascending value order wherever proof buckets are
// filled, so results are reproducible run to run.
func generate(ctx context.Context, alphabet []int64, count int, ops []expr.Op, maxPerValue int) (valueMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(valueMap)
	switch {
	case count <= 0:
		return out, nil

	case count == 1:
		for _, n := range alphabet {
			out[n] = append(out[n], partial{
				value:      n,
				expression: strconv.FormatInt(n, 10),
				operands:   []int64{n},
				opCount:    0,
			})
		}
		return out, nil

	case count <= directCutoff:
		if err := enumerate(ctx, out, alphabet, count, ops, maxPerValue); err != nil {
			return nil, err
		}
		return out, nil
	}

	left := count / 2
	right := count - left

	leftVals, rightVals, err := generateHalves(ctx, alphabet, left, right, ops, maxPerValue)
	if err != nil {
		return nil, err
	}

	hasSub := containsOp(ops, expr.OpSub)
	hasMul := containsOp(ops, expr.OpMul)
	hasDiv := containsOp(ops, expr.OpDiv)

	combine := func(value int64, lp, rp partial, op expr.Op) {
		bucket := out[value]
		if maxPerValue != 0 && len(bucket) >= maxPerValue {
			return
		}
		out[value] = append(bucket, partial{
			value:      value,
			expression: expr.Compose(lp.expression, op, rp.expression),
			operands:   mergeOperands(lp.operands, rp.operands),
			opCount:    lp.opCount + rp.opCount + 1,
		})
	}

	leftOrder := sortedValues(leftVals)
	rightOrder := sortedValues(rightVals)
	for _, lv := range leftOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, rv := range rightOrder {
			leftProofs := leftVals[lv]
			rightProofs := rightVals[rv]
			// Bounded mode composes only the first proof from each
			// side, trading completeness for speed.
			if maxPerValue != 0 {
				leftProofs = leftProofs[:1]
				rightProofs = rightProofs[:1]
			}
			for _, lp := range leftProofs {
				for _, rp := range rightProofs {
					if v, ok := expr.CheckedAdd(lv, rv); ok {
						combine(v, lp, rp, expr.OpAdd)
					}
					if hasSub {
						if v, ok := expr.CheckedSub(lv, rv); ok {
							combine(v, lp, rp, expr.OpSub)
						}
					}
					if hasMul {
						if v, ok := expr.CheckedMul(lv, rv); ok {
							combine(v, lp, rp, expr.OpMul)
						}
					}
					if hasDiv {
						if v, ok := expr.CheckedQuo(lv, rv); ok {
							combine(v, lp, rp, expr.OpDiv)
						}
					}
				}
			}
		}
	}
	return out, nil
}

// generateHalves produces both halves of a split. The halves are
// independent, so unequal ones run on separate goroutines; equal ones are
// generated once and shared.
func generateHalves(ctx context.Context, alphabet []int64, left, right int, ops []expr.Op, maxPerValue int) (valueMap, valueMap, error) {
	if left == right {
		vals, err := generate(ctx, alphabet, left, ops, maxPerValue)
		if err != nil {
			return nil, nil, err
		}
		return vals, vals, nil
	}

	var leftVals, rightVals valueMap
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leftVals, err = generate(gctx, alphabet, left, ops, maxPerValue)
		return err
	})
	g.Go(func() error {
		var err error
		rightVals, err = generate(gctx, alphabet, right, ops, maxPerValue)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return leftVals, rightVals, nil
}

// enumerate walks every operand tuple (with repetition) and operator tuple
// for the given slot count, bucketing each exact value.
func enumerate(ctx context.Context, out valueMap, alphabet []int64, count int, ops []expr.Op, maxPerValue int) error {
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
			if v, ok := expr.Evaluate(nums, seq); ok {
				bucket := out[v]
				if maxPerValue == 0 || len(bucket) < maxPerValue {
					out[v] = append(bucket, partial{
						value:      v,
						expression: expr.Format(nums, seq),
						operands:   sortedUnique(append([]int64(nil), nums...)),
						opCount:    count - 1,
					})
				}
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

// advance increments a mixed-radix odometer; false means it wrapped.
func advance(idx []int, base int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < base {
			return true
		}
		idx[i] = 0
	}
	return false
}

// sortedValues returns a map's keys in ascending order.
func sortedValues(m valueMap) []int64 {
	keys := make([]int64, 0, len(m))
	for v := range m {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// containsOp reports whether op is in the enabled set.
func containsOp(ops []expr.Op, op expr.Op) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

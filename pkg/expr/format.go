package expr

import (
	"strconv"
	"strings"
)

// Format renders an interleaved operand/operator sequence as a display
// string. A contiguous multiplicative run is grouped under one parenthesis
// pair only when the sequence also contains additive operators; a sequence
// that is a single run renders bare. The rendered string evaluates to the
// same value as the sequence under standard precedence.
func Format(nums []int64, ops []Op) string {
	if len(nums) == 0 {
		return ""
	}
	if len(nums) == 1 {
		return strconv.FormatInt(nums[0], 10)
	}

	type segment struct {
		text    string
		grouped bool // contains * or /, so parens when embedded
	}

	var segments []segment
	var joiners []Op
	var b strings.Builder
	b.WriteString(strconv.FormatInt(nums[0], 10))
	grouped := false

	flush := func() {
		segments = append(segments, segment{text: b.String(), grouped: grouped})
		b.Reset()
		grouped = false
	}

	for i, op := range ops {
		if op.Tier() == tierAdditive {
			flush()
			joiners = append(joiners, op)
			b.WriteString(strconv.FormatInt(nums[i+1], 10))
			continue
		}
		if op == OpMul || op == OpDiv {
			grouped = true
		}
		b.WriteString(" ")
		b.WriteString(string(op))
		b.WriteString(" ")
		b.WriteString(strconv.FormatInt(nums[i+1], 10))
	}
	flush()

	var out strings.Builder
	for i, seg := range segments {
		if i > 0 {
			out.WriteString(" ")
			out.WriteString(string(joiners[i-1]))
			out.WriteString(" ")
		}
		if seg.grouped && len(segments) > 1 {
			out.WriteString("(")
			out.WriteString(seg.text)
			out.WriteString(")")
		} else {
			out.WriteString(seg.text)
		}
	}
	return out.String()
}

// Compose joins two already-formatted sub-expressions under op, adding the
// parentheses the combined string needs to keep its value:
//
//   - multiplication wraps either side whose top-level operator is additive
//   - division additionally wraps a right side whose top-level operator is
//     multiplicative, since "a / b * c" would regroup as "(a / b) * c"
//   - subtraction wraps a right side whose top-level operator is additive;
//     its left side never needs wrapping
//   - addition never wraps
func Compose(left string, op Op, right string) string {
	switch op {
	case OpMul:
		left = wrapBelow(left, tierMultiplicative)
		right = wrapBelow(right, tierMultiplicative)
	case OpDiv:
		left = wrapBelow(left, tierMultiplicative)
		right = wrapBelow(right, tierPower)
	case OpSub:
		right = wrapBelow(right, tierMultiplicative)
	}
	return left + " " + string(op) + " " + right
}

// wrapBelow parenthesizes expr when its top-level operator tier is below
// minTier. An atom or fully-parenthesized expression is returned unchanged.
func wrapBelow(expr string, minTier int) string {
	tier, ok := topTier(expr)
	if ok && tier < minTier {
		return "(" + expr + ")"
	}
	return expr
}

// topTier reports the lowest operator tier appearing at parenthesis depth
// zero, which is the tier of the expression's top-level operator. The bool
// is false for atoms and fully-parenthesized expressions.
func topTier(expr string) (int, bool) {
	depth := 0
	tier := 0
	found := false
	for _, c := range expr {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-', '*', '/', '^':
			if depth == 0 {
				t := Op(string(c)).Tier()
				if !found || t < tier {
					tier = t
				}
				found = true
			}
		}
	}
	return tier, found
}

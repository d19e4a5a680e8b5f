// Package expr implements exact-integer arithmetic expressions over a fixed
// operator alphabet: evaluation with precedence, minimally-parenthesized
// formatting, and canonical keys for commutative-equivalence comparison.
package expr

// Op is a binary arithmetic operator.
type Op string

// Operator symbols.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"
)

// Precedence tiers. Higher binds tighter. Operators within a tier
// associate left to right.
const (
	tierAdditive = iota
	tierMultiplicative
	tierPower
)

// Tier returns the precedence tier of the operator.
func (o Op) Tier() int {
	switch o {
	case OpPow:
		return tierPower
	case OpMul, OpDiv:
		return tierMultiplicative
	default:
		return tierAdditive
	}
}

// OpSet describes which optional operators a search may use.
// Addition is always available.
type OpSet struct {
	Multiply     bool
	Subtract     bool
	Divide       bool
	Exponentiate bool
}

// Ops returns the enabled operators in a stable order.
func (s OpSet) Ops() []Op {
	ops := []Op{OpAdd}
	if s.Multiply {
		ops = append(ops, OpMul)
	}
	if s.Subtract {
		ops = append(ops, OpSub)
	}
	if s.Divide {
		ops = append(ops, OpDiv)
	}
	if s.Exponentiate {
		ops = append(ops, OpPow)
	}
	return ops
}

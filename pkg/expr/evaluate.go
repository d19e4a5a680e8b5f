package expr

import "math"

// Evaluate reduces an interleaved operand/operator sequence to an exact
// integer. len(ops) must be len(nums)-1 (or both empty). The bool result is
// false when the sequence has no exact value: a division by zero, a
// non-exact quotient, a negative exponent, or arithmetic that overflows
// int64. An empty sequence evaluates to 0; a single operand to itself.
//
// Reduction is three passes, mirroring precedence: exponentiation first,
// then multiplication and division, then a running additive fold. Each pass
// runs left to right.
func Evaluate(nums []int64, ops []Op) (int64, bool) {
	if len(nums) == 0 {
		return 0, true
	}
	if len(nums) == 1 {
		return nums[0], true
	}

	vals := make([]int64, len(nums))
	copy(vals, nums)
	rest := make([]Op, len(ops))
	copy(rest, ops)

	for i := 0; i < len(rest); {
		if rest[i] == OpPow {
			v, ok := checkedPow(vals[i], vals[i+1])
			if !ok {
				return 0, false
			}
			vals[i] = v
			vals = append(vals[:i+1], vals[i+2:]...)
			rest = append(rest[:i], rest[i+1:]...)
		} else {
			i++
		}
	}

	for i := 0; i < len(rest); {
		switch rest[i] {
		case OpMul:
			v, ok := CheckedMul(vals[i], vals[i+1])
			if !ok {
				return 0, false
			}
			vals[i] = v
		case OpDiv:
			v, ok := CheckedQuo(vals[i], vals[i+1])
			if !ok {
				return 0, false
			}
			vals[i] = v
		default:
			i++
			continue
		}
		vals = append(vals[:i+1], vals[i+2:]...)
		rest = append(rest[:i], rest[i+1:]...)
	}

	total := vals[0]
	for i, op := range rest {
		var ok bool
		if op == OpAdd {
			total, ok = CheckedAdd(total, vals[i+1])
		} else {
			total, ok = CheckedSub(total, vals[i+1])
		}
		if !ok {
			return 0, false
		}
	}
	return total, true
}

// CheckedAdd adds without silent int64 overflow.
func CheckedAdd(a, b int64) (int64, bool) {
	v := a + b
	if (b > 0 && v < a) || (b < 0 && v > a) {
		return 0, false
	}
	return v, true
}

// CheckedSub subtracts without silent int64 overflow.
func CheckedSub(a, b int64) (int64, bool) {
	v := a - b
	if (b > 0 && v > a) || (b < 0 && v < a) {
		return 0, false
	}
	return v, true
}

// CheckedQuo divides exactly. It is false for a zero or non-dividing
// divisor, and for math.MinInt64 / -1, the one exact quotient that leaves
// int64.
func CheckedQuo(a, b int64) (int64, bool) {
	if b == 0 || a%b != 0 {
		return 0, false
	}
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	return a / b, true
}

// CheckedMul multiplies without silent int64 overflow.
func CheckedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	v := a * b
	if v/b != a {
		return 0, false
	}
	return v, true
}

// checkedPow computes base^exp by repeated checked multiplication.
// Negative exponents never yield integers here (operands are positive),
// so they are rejected outright. 0^0 is taken as 1.
func checkedPow(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	if base == 0 {
		if exp == 0 {
			return 1, true
		}
		return 0, true
	}
	if base == 1 {
		return 1, true
	}
	var result int64 = 1
	for i := int64(0); i < exp; i++ {
		v, ok := CheckedMul(result, base)
		if !ok {
			return 0, false
		}
		result = v
	}
	return result, true
}

package expr

import (
	"sort"
	"strings"
)

// CanonicalKey derives a normalized key from a formatted expression. Two
// expressions share a key iff they are equal under reordering of top-level
// additive terms and reordering of factors inside pure multiplicative
// terms. Division is not commutative, so terms containing "/" keep their
// factor order; distributivity is not recognized.
func CanonicalKey(expression string) string {
	expr := strings.ReplaceAll(expression, " ", "")

	type term struct {
		sign byte
		text string
	}
	var terms []term

	var current strings.Builder
	depth := 0
	sign := byte('+')
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '(':
			depth++
			current.WriteByte(c)
		case c == ')':
			depth--
			current.WriteByte(c)
		case (c == '+' || c == '-') && depth == 0 && current.Len() > 0:
			terms = append(terms, term{sign: sign, text: normalizeTerm(current.String())})
			sign = c
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 {
		terms = append(terms, term{sign: sign, text: normalizeTerm(current.String())})
	}

	var pos, neg []string
	for _, t := range terms {
		if t.sign == '+' {
			pos = append(pos, t.text)
		} else {
			neg = append(neg, t.text)
		}
	}
	sort.Strings(pos)
	sort.Strings(neg)

	var key strings.Builder
	for _, t := range pos {
		key.WriteByte('+')
		key.WriteString(t)
	}
	for _, t := range neg {
		key.WriteByte('-')
		key.WriteString(t)
	}
	return key.String()
}

// normalizeTerm strips redundant fully-enclosing parentheses, then sorts
// the factors of a pure multiplicative chain. A term containing division
// is left in source order.
func normalizeTerm(term string) string {
	for strings.HasPrefix(term, "(") && strings.HasSuffix(term, ")") {
		if !enclosesWhole(term) {
			break
		}
		term = term[1 : len(term)-1]
	}

	if !strings.Contains(term, "/") && strings.Contains(term, "*") {
		factors := strings.Split(term, "*")
		sort.Strings(factors)
		return strings.Join(factors, "*")
	}
	return term
}

// enclosesWhole reports whether the leading "(" of term matches its final
// character, i.e. the parentheses wrap the entire term.
func enclosesWhole(term string) bool {
	depth := 0
	for i := 0; i < len(term); i++ {
		switch term[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && i < len(term)-1 {
			return false
		}
	}
	return true
}

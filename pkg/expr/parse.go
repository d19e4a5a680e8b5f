package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAndEvaluate reads a formatted expression string back under the
// package's precedence rules and returns its exact integer value. It is
// the inverse of Format/Compose and shares Evaluate's semantics: division
// must be exact, and same-tier operators associate left to right. Unary
// minus is not accepted; formatted expressions never contain it.
func ParseAndEvaluate(s string) (int64, error) {
	p := &parser{input: strings.TrimSpace(s)}
	if p.input == "" {
		return 0, nil
	}
	v, err := p.parseAdditive()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseAdditive() (int64, error) {
	v, err := p.parseMultiplicative()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || op.Tier() != tierAdditive {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return 0, err
		}
		var sumOK bool
		if op == OpAdd {
			v, sumOK = CheckedAdd(v, rhs)
		} else {
			v, sumOK = CheckedSub(v, rhs)
		}
		if !sumOK {
			return 0, fmt.Errorf("additive overflow at offset %d", p.pos)
		}
	}
}

func (p *parser) parseMultiplicative() (int64, error) {
	v, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || op.Tier() != tierMultiplicative {
			return v, nil
		}
		p.pos++
		rhs, err := p.parsePower()
		if err != nil {
			return 0, err
		}
		if op == OpMul {
			mul, ok := CheckedMul(v, rhs)
			if !ok {
				return 0, fmt.Errorf("multiplication overflow at offset %d", p.pos)
			}
			v = mul
		} else {
			quo, ok := CheckedQuo(v, rhs)
			if !ok {
				return 0, fmt.Errorf("no exact value for %d / %d", v, rhs)
			}
			v = quo
		}
	}
}

func (p *parser) parsePower() (int64, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || op != OpPow {
			return v, nil
		}
		p.pos++
		rhs, err := p.parsePrimary()
		if err != nil {
			return 0, err
		}
		pw, ok := checkedPow(v, rhs)
		if !ok {
			return 0, fmt.Errorf("no exact value for %d ^ %d", v, rhs)
		}
		v = pw
	}
}

func (p *parser) parsePrimary() (int64, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	if p.input[p.pos] == '(' {
		p.pos++
		v, err := p.parseAdditive()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	return strconv.ParseInt(p.input[start:p.pos], 10, 64)
}

// peekOp returns the operator at the cursor without consuming it.
func (p *parser) peekOp() (Op, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return "", false
	}
	switch c := p.input[p.pos]; c {
	case '+', '-', '*', '/', '^':
		return Op(string(c)), true
	}
	return "", false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

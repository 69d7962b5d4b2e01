package calcengine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// parser is a single-pass recursive descent evaluator over a validated
// expression string. Grammar, lowest to highest binding:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = { "+" | "-" } ( number | "(" expression ")" )
//
// Operators of equal precedence evaluate left to right. There is no
// exponent operator: "**" is a misplaced "*", not a power.
type parser struct {
	input string
	pos   int
}

func (p *parser) evalExpression() (float64, error) {
	value, err := p.evalTerm()
	if err != nil {
		return 0, err
	}

	for {
		p.skipWhitespace()
		switch {
		case p.consume('+'):
			rhs, err := p.evalTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case p.consume('-'):
			rhs, err := p.evalTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
		if err := checkFinite(value); err != nil {
			return 0, err
		}
	}
}

func (p *parser) evalTerm() (float64, error) {
	value, err := p.evalFactor()
	if err != nil {
		return 0, err
	}

	for {
		p.skipWhitespace()
		switch {
		case p.consume('*'):
			rhs, err := p.evalFactor()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case p.consume('/'):
			rhs, err := p.evalFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			value /= rhs
		default:
			return value, nil
		}
		if err := checkFinite(value); err != nil {
			return 0, err
		}
	}
}

func (p *parser) evalFactor() (float64, error) {
	p.skipWhitespace()

	// Unary signs nest ("--5" negates twice), matching the usual
	// arithmetic reading.
	if p.consume('+') {
		return p.evalFactor()
	}
	if p.consume('-') {
		value, err := p.evalFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	if p.consume('(') {
		value, err := p.evalExpression()
		if err != nil {
			return 0, err
		}
		p.skipWhitespace()
		if !p.consume(')') {
			return 0, fmt.Errorf("%w: missing closing parenthesis at position %d", ErrSyntax, p.pos)
		}
		return value, nil
	}

	return p.evalNumber()
}

func (p *parser) evalNumber() (float64, error) {
	p.skipWhitespace()

	start := p.pos
	dotSeen := false
	for !p.atEnd() {
		c := p.peek()
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !dotSeen {
			dotSeen = true
			p.pos++
			continue
		}
		break
	}

	if start == p.pos {
		if p.atEnd() {
			return 0, fmt.Errorf("%w: expected a number at position %d", ErrSyntax, p.pos)
		}
		return 0, fmt.Errorf("%w: expected a number, found %q at position %d", ErrSyntax, string(p.peek()), p.pos)
	}

	literal := p.input[start:p.pos]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: number %q out of range", ErrSyntax, literal)
		}
		return 0, fmt.Errorf("%w: invalid number %q", ErrSyntax, literal)
	}
	return value, nil
}

func (p *parser) skipWhitespace() {
	for !p.atEnd() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) consume(target byte) bool {
	if p.atEnd() || p.peek() != target {
		return false
	}
	p.pos++
	return true
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

// checkFinite rejects values that left float64 range. Operands are always
// finite, so overflow is caught at the operation that produced it and can
// never hide behind a later division.
func checkFinite(value float64) error {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Errorf("%w: result out of range", ErrSyntax)
	}
	return nil
}

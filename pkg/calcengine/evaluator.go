package calcengine

import (
	"fmt"
	"log/slog"
)

// Evaluate validates and evaluates one arithmetic expression.
//
// The input is checked against the allowed grammar before anything is
// computed: length bound, character whitelist, emptiness, parenthesis
// balance. Evaluation itself applies standard precedence ("*" and "/"
// before "+" and "-", left associative, parentheses override) and supports
// nested unary signs. Every failure wraps one of the classified sentinel
// errors of this package; Evaluate never returns an unclassified fault and
// never returns an infinite or NaN value.
//
// Evaluate is a pure function: no I/O, no shared state, safe for any number
// of concurrent callers.
func Evaluate(expression string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unexpected panic during expression evaluation", slog.Any("panic", r))
			result = Result{}
			err = fmt.Errorf("%w: expression could not be evaluated", ErrSyntax)
		}
	}()

	if err := validateExpression(expression); err != nil {
		return Result{}, err
	}

	p := &parser{input: expression}
	value, err := p.evalExpression()
	if err != nil {
		return Result{}, err
	}

	p.skipWhitespace()
	if !p.atEnd() {
		return Result{}, fmt.Errorf("%w: unexpected character %q at position %d", ErrSyntax, string(p.peek()), p.pos)
	}

	if err := checkFinite(value); err != nil {
		return Result{}, err
	}

	return newResult(value), nil
}

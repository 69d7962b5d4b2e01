package calcengine

import (
	"fmt"
	"strings"
)

// validateExpression runs the pre-evaluation checks in fixed order: length
// bound, character whitelist, emptiness, parenthesis balance. The parser
// never sees a string that failed any of them.
func validateExpression(expression string) error {
	if len(expression) > MaxExpressionLength {
		return fmt.Errorf("%w: length %d exceeds limit of %d characters", ErrExpressionTooLong, len(expression), MaxExpressionLength)
	}

	if err := checkAllowedCharacters(expression); err != nil {
		return err
	}

	if strings.TrimSpace(expression) == "" {
		return ErrEmptyExpression
	}

	return checkBalancedParentheses(expression)
}

func isAllowedCharacter(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '+' || c == '-' || c == '*' || c == '/':
		return true
	case c == '(' || c == ')':
		return true
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		return true
	default:
		return false
	}
}

// checkAllowedCharacters rejects anything outside digits, decimal point,
// the four operators, parentheses and whitespace. No other byte ever
// reaches the parser.
func checkAllowedCharacters(expression string) error {
	for i := 0; i < len(expression); i++ {
		if !isAllowedCharacter(expression[i]) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidCharacters, string(expression[i]), i)
		}
	}
	return nil
}

func checkBalancedParentheses(expression string) error {
	depth := 0
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unmatched ')' at position %d", ErrSyntax, i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed parenthesis", ErrSyntax, depth)
	}
	return nil
}

package calcengine

import "errors"

// Classified evaluation errors. Every failure returned by Evaluate wraps
// exactly one of these sentinels, so callers can branch with errors.Is
// while still surfacing the detailed message to the user.
var (
	// ErrEmptyExpression is returned when the input is blank or whitespace-only.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrInvalidCharacters is returned when the input contains a character
	// outside the allowed set (digits, decimal point, + - * /, parentheses,
	// whitespace).
	ErrInvalidCharacters = errors.New("invalid characters in expression")

	// ErrSyntax is returned when the input consists of allowed characters
	// but does not form a valid expression.
	ErrSyntax = errors.New("invalid expression syntax")

	// ErrDivisionByZero is returned when a division's divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrExpressionTooLong is returned when the input exceeds MaxExpressionLength.
	ErrExpressionTooLong = errors.New("expression too long")
)

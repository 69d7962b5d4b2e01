package calcengine

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvaluateResults(t *testing.T) {
	tests := []struct {
		expression string
		expected   float64
		rendered   string
	}{
		{"2+2", 4, "4"},
		{"2+2*3", 8, "8"},
		{"(2+3)*4", 20, "20"},
		{"-5+3", -2, "-2"},
		{"2.5+2.5", 5, "5"},
		{"10/4", 2.5, "2.5"},
		{"1 + 2 * (3 - 1)", 5, "5"},
		{"--5", 5, "5"},
		{"+5", 5, "5"},
		{"2++2", 4, "4"},
		{"100 / 10 / 2", 5, "5"},
		{"10-3-4", 3, "3"},
		{".5+.5", 1, "1"},
		{"5.", 5, "5"},
		{"(((((1)))))", 1, "1"},
		{"0.1+0.2", 0.30000000000000004, "0.30000000000000004"},
		{"2 * 3.5", 7, "7"},
		{"-0.5*4", -2, "-2"},
		{"\t2 +\n2", 4, "4"},
		{"7/2/2", 1.75, "1.75"},
		{"(8 - 2) * (5 - 3)", 12, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			result, err := Evaluate(tt.expression)
			if err != nil {
				t.Errorf("unexpected error: %s", err.Error())
				return
			}
			if result.Float64() != tt.expected {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, result.Float64(), tt.expected)
			}
			if result.String() != tt.rendered {
				t.Errorf("Evaluate(%q) rendered as %q, want %q", tt.expression, result.String(), tt.rendered)
			}
		})
	}
}

func TestEvaluateClassifiesErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		expected   error
	}{
		{"letter after operator", "2+a", ErrInvalidCharacters},
		{"caret operator", "2^3", ErrInvalidCharacters},
		{"identifier", "import os", ErrInvalidCharacters},
		{"percent operator", "2%3", ErrInvalidCharacters},
		{"comma", "1,5+1", ErrInvalidCharacters},
		{"empty string", "", ErrEmptyExpression},
		{"spaces only", "   ", ErrEmptyExpression},
		{"tabs and newlines only", "\t\n ", ErrEmptyExpression},
		{"literal zero divisor", "10/0", ErrDivisionByZero},
		{"computed zero divisor", "5/(3-3)", ErrDivisionByZero},
		{"zero by zero", "0/0", ErrDivisionByZero},
		{"float zero divisor", "1/0.0", ErrDivisionByZero},
		{"trailing operator", "2+", ErrSyntax},
		{"unclosed parenthesis", "((2+3)", ErrSyntax},
		{"reversed parentheses", ")2+3(", ErrSyntax},
		{"empty parentheses", "()", ErrSyntax},
		{"double star", "2**3", ErrSyntax},
		{"double slash", "2//3", ErrSyntax},
		{"two decimal points", "1.2.3", ErrSyntax},
		{"lone decimal point", ".", ErrSyntax},
		{"adjacent numbers", "2 3", ErrSyntax},
		{"leading star", "*2", ErrSyntax},
		{"implicit multiplication", "2(3)", ErrSyntax},
		{"oversized literal", strings.Repeat("9", 400), ErrSyntax},
		{"input too long", strings.Repeat("1", MaxExpressionLength+1), ErrExpressionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expression)
			if err == nil {
				t.Errorf("Evaluate(%q) succeeded, want %s", tt.expression, tt.expected.Error())
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Evaluate(%q) = %s, want %s", tt.expression, err.Error(), tt.expected.Error())
			}
		})
	}
}

func TestEvaluateErrorMessages(t *testing.T) {
	t.Run("bare classification", func(t *testing.T) {
		_, err := Evaluate("10/0")
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "division by zero" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("classification prefix on detailed message", func(t *testing.T) {
		_, err := Evaluate("2+")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.HasPrefix(err.Error(), ErrSyntax.Error()) {
			t.Errorf("message %q does not start with %q", err.Error(), ErrSyntax.Error())
		}
	})
}

func TestEvaluateOverflowNeverLeaksInfinity(t *testing.T) {
	// 200 digit operands keep every composite expression inside the input
	// bound while their product still overflows float64.
	big := strings.Repeat("9", 200)

	tests := []struct {
		name       string
		expression string
	}{
		{"overflowing literal", strings.Repeat("9", 400)},
		{"overflowing product", big + "*" + big},
		{"overflow hidden behind division", "1/(" + big + "*" + big + ")"},
		{"infinity minus infinity", big + "*" + big + "-" + big + "*" + big},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.expression) > MaxExpressionLength {
				t.Fatalf("test expression exceeds the input bound: %d", len(tt.expression))
			}

			result, err := Evaluate(tt.expression)
			if err == nil {
				if math.IsInf(result.Float64(), 0) || math.IsNaN(result.Float64()) {
					t.Errorf("Evaluate(%q) leaked a non-finite value", tt.expression)
				}
				return
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Evaluate(%q) = %s, want %s", tt.expression, err.Error(), ErrSyntax.Error())
			}
		})
	}
}

func TestEvaluateDeepNesting(t *testing.T) {
	depth := 499
	expression := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	if len(expression) > MaxExpressionLength {
		t.Fatalf("test expression exceeds the input bound: %d", len(expression))
	}

	result, err := Evaluate(expression)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if result.Float64() != 1 {
		t.Errorf("unexpected value: %v", result.Float64())
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Run("stable result", func(t *testing.T) {
		first, err := Evaluate("6/4")
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		for i := 0; i < 3; i++ {
			again, err := Evaluate("6/4")
			if err != nil {
				t.Fatalf("unexpected error on repeat: %s", err.Error())
			}
			if again.Float64() != first.Float64() || again.String() != first.String() {
				t.Errorf("repeat evaluation diverged: %v vs %v", again, first)
			}
		}
	})

	t.Run("stable classification", func(t *testing.T) {
		_, first := Evaluate("((2+3)")
		if first == nil {
			t.Fatal("expected error")
		}
		for i := 0; i < 3; i++ {
			_, again := Evaluate("((2+3)")
			if again == nil || again.Error() != first.Error() {
				t.Errorf("repeat classification diverged: %v vs %v", again, first)
			}
		}
	})
}

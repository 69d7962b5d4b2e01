package calcengine

import (
	"math"
	"strconv"
)

// MaxExpressionLength bounds the accepted input size. Longer inputs are
// rejected before any other check runs.
const MaxExpressionLength = 1000

// Result holds the numeric outcome of a successful evaluation.
//
// Arithmetic is carried out in float64; a result counts as an integer when
// it has no fractional part and its magnitude is exactly representable as
// an int64. Integer results render without a fractional suffix ("4", not
// "4.0"), even when the input contained decimal literals ("2.5+2.5" -> "5").
type Result struct {
	value   float64
	integer bool
}

func newResult(value float64) Result {
	return Result{
		value:   value,
		integer: isIntegral(value),
	}
}

func isIntegral(v float64) bool {
	if v != math.Trunc(v) {
		return false
	}
	// math.MaxInt64 rounds to 2^63 as float64, so the strict comparison
	// admits exactly the values that survive an int64 conversion.
	return v >= math.MinInt64 && v < math.MaxInt64
}

// IsInteger reports whether the result renders in integer form.
func (r Result) IsInteger() bool {
	return r.integer
}

// Float64 returns the raw computed value.
func (r Result) Float64() float64 {
	return r.value
}

func (r Result) String() string {
	if r.integer {
		return strconv.FormatInt(int64(r.value), 10)
	}
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

// MarshalJSON encodes the result in its rendered form.
func (r Result) MarshalJSON() ([]byte, error) {
	return []byte(r.String()), nil
}

package ops

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// domainError builds a *DomainError with a stack trace attached.
func domainError(op string, operand float64, reason string) error {
	return errors.WithStack(&DomainError{Op: op, Operand: operand, Reason: reason})
}

// floorDiv returns floor(a / b), matching floor-division semantics where the
// quotient is rounded toward negative infinity.
//
// Computed from the remainder so that floorDiv(a, b)*b + floorMod(a, b) == a
// holds as closely as float64 allows.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		// Keep the sign of the true quotient for -0.
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

// floorMod returns a - b*floor(a/b); the result has the sign of the divisor.
func floorMod(a, b float64) float64 {
	mod := math.Mod(a, b)
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
		}
		return mod
	}
	return math.Copysign(0, b)
}

// roundDigits rounds v to the given number of decimal digits, ties to even.
// Negative digits round to tens, hundreds, ...
func roundDigits(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return v
	}
	if digits >= 0 {
		// strconv rounds the exact binary value correctly, ties to even.
		s := strconv.FormatFloat(v, 'f', digits, 64)
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v
		}
		return r
	}
	if digits < -308 {
		return math.Copysign(0, v)
	}
	scale := math.Pow10(-digits)
	return math.RoundToEven(v/scale) * scale
}

// isInteger reports whether v is a finite whole number.
func isInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

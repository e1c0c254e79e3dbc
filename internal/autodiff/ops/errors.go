package ops

import (
	"errors"
	"fmt"
)

// ErrMathDomain is returned when the scalar math of an operation is undefined
// at the current operand values (division by zero, logarithm of a
// non-positive value, tangent at its pole, ...).
var ErrMathDomain = errors.New("math domain error")

// DomainError describes an operation evaluated outside its domain.
type DomainError struct {
	Op      string  // Operation name (e.g., "log", "div")
	Operand float64 // Offending operand value
	Reason  string  // Human-readable cause
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (operand %g): %v", e.Op, e.Reason, e.Operand, ErrMathDomain)
}

// Is reports whether target is ErrMathDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrMathDomain
}

package ops

import "math"

// SqrtOp represents the square root operation: p = sqrt(a).
//
// Local partial:
//   - dp/da = 1 / (2 * sqrt(a)) = 0.5 / p
//
// The derivative is unbounded at 0, so only positive operands are accepted.
type SqrtOp struct{}

// Name returns "sqrt".
func (SqrtOp) Name() string { return "sqrt" }

// Forward computes sqrt(a).
func (SqrtOp) Forward(a float64) (Result, error) {
	if a <= 0 {
		return Result{}, domainError("sqrt", a, "square root derivative undefined for non-positive value")
	}
	p := math.Sqrt(a)
	return Result{Value: p, Partials: [2]float64{0.5 / p}}, nil
}

package ops

import "math"

// PowOp represents exponentiation: p = a ** b.
//
// Local partials:
//   - dp/da = b * p / a (b * a^(b-1) when a == 0)
//   - dp/db = p * ln(a), only when the exponent is differentiable
//
// A differentiable exponent needs ln(a), so the base must be positive. A zero
// base with 0 < b < 1 is also rejected: dp/da is unbounded there.
type PowOp struct {
	// VariableExponent is true when b carries derivatives.
	VariableExponent bool
}

// Name returns "pow".
func (PowOp) Name() string { return "pow" }

// Forward computes a ** b.
func (op PowOp) Forward(a, b float64) (Result, error) {
	switch {
	case op.VariableExponent && a <= 0:
		return Result{}, domainError("pow", a, "non-positive base with differentiable exponent")
	case a == 0 && b < 0:
		return Result{}, domainError("pow", a, "zero raised to a negative power")
	case a == 0 && b > 0 && b < 1:
		return Result{}, domainError("pow", a, "derivative unbounded at zero base")
	case a < 0 && !isInteger(b):
		return Result{}, domainError("pow", a, "negative base raised to a non-integer power")
	}

	p := math.Pow(a, b)

	var da float64
	switch {
	case b == 0:
		da = 0
	case a != 0:
		da = b * p / a
	default:
		da = b * math.Pow(a, b-1)
	}

	var db float64
	if op.VariableExponent {
		db = p * math.Log(a)
	}

	return Result{Value: p, Partials: [2]float64{da, db}}, nil
}

package ops

// ModOp represents modulo with the sign of the divisor: p = a - b*floor(a/b).
//
// Local partials when the divisor is differentiable:
//   - dp/da = 1
//   - dp/db = -floor(a/b)
//
// With a constant divisor the operation falls under the zero-gradient
// convention and the result is Discrete.
type ModOp struct {
	// VariableDivisor is true when b carries derivatives.
	VariableDivisor bool
}

// Name returns "mod".
func (ModOp) Name() string { return "mod" }

// Forward computes a mod b.
func (op ModOp) Forward(a, b float64) (Result, error) {
	if b == 0 {
		return Result{}, domainError("mod", b, "modulo by zero")
	}
	p := floorMod(a, b)
	if !op.VariableDivisor {
		return discrete(p), nil
	}
	return Result{Value: p, Partials: [2]float64{1, -floorDiv(a, b)}}, nil
}

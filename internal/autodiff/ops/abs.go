package ops

import "math"

// AbsOp represents absolute value: p = |a|.
//
// Local partial:
//   - dp/da = sign(a), with sign(0) = +1
type AbsOp struct{}

// Name returns "abs".
func (AbsOp) Name() string { return "abs" }

// Forward computes |a|.
func (AbsOp) Forward(a float64) (Result, error) {
	sign := 1.0
	if a < 0 {
		sign = -1
	}
	return Result{Value: math.Abs(a), Partials: [2]float64{sign}}, nil
}

package ops

import "math"

// SinOp represents the sine operation: p = sin(a), a in radians.
//
// Local partial:
//   - dp/da = cos(a)
type SinOp struct{}

// Name returns "sin".
func (SinOp) Name() string { return "sin" }

// Forward computes sin(a).
func (SinOp) Forward(a float64) (Result, error) {
	return Result{Value: math.Sin(a), Partials: [2]float64{math.Cos(a)}}, nil
}

package ops

import "math"

// ExpOp represents the exponential operation: p = e^a.
//
// Local partial:
//   - dp/da = e^a = p
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward computes e^a.
func (ExpOp) Forward(a float64) (Result, error) {
	p := math.Exp(a)
	return Result{Value: p, Partials: [2]float64{p}}, nil
}

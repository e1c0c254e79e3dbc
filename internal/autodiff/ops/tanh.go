package ops

import "math"

// TanhOp represents the hyperbolic tangent: p = tanh(a).
//
// Local partial, reusing the output:
//   - dp/da = 1 - tanh²(a) = 1 - p²
type TanhOp struct{}

// Name returns "tanh".
func (TanhOp) Name() string { return "tanh" }

// Forward computes tanh(a).
func (TanhOp) Forward(a float64) (Result, error) {
	p := math.Tanh(a)
	return Result{Value: p, Partials: [2]float64{1 - p*p}}, nil
}

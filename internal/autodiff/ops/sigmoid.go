package ops

import "math"

// SigmoidOp represents the logistic sigmoid: σ(a) = 1 / (1 + exp(-a)).
//
// Local partial, reusing the output:
//   - dσ/da = σ(a) * (1 - σ(a))
type SigmoidOp struct{}

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward computes σ(a).
func (SigmoidOp) Forward(a float64) (Result, error) {
	p := sigmoid(a)
	return Result{Value: p, Partials: [2]float64{p * (1 - p)}}, nil
}

// sigmoid avoids overflow of exp(-a) for large negative a.
func sigmoid(a float64) float64 {
	if a >= 0 {
		return 1 / (1 + math.Exp(-a))
	}
	e := math.Exp(a)
	return e / (1 + e)
}

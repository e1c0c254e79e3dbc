package ops

import "math"

// CosOp represents the cosine operation: p = cos(a), a in radians.
//
// Local partial:
//   - dp/da = -sin(a)
type CosOp struct{}

// Name returns "cos".
func (CosOp) Name() string { return "cos" }

// Forward computes cos(a).
func (CosOp) Forward(a float64) (Result, error) {
	return Result{Value: math.Cos(a), Partials: [2]float64{-math.Sin(a)}}, nil
}

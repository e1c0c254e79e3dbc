package ops

import "math"

// RsqrtOp represents the reciprocal square root operation: p = 1/sqrt(a).
//
// Local partial:
//   - dp/da = -0.5 * a^(-3/2) = -0.5 * p³
type RsqrtOp struct{}

// Name returns "rsqrt".
func (RsqrtOp) Name() string { return "rsqrt" }

// Forward computes 1/sqrt(a).
func (RsqrtOp) Forward(a float64) (Result, error) {
	if a <= 0 {
		return Result{}, domainError("rsqrt", a, "reciprocal square root of non-positive value")
	}
	p := 1 / math.Sqrt(a)
	return Result{Value: p, Partials: [2]float64{-0.5 * p * p * p}}, nil
}

package ops

// SiLUOp represents the SiLU (Swish) activation: p = a * σ(a).
//
// Local partial:
//
//	dp/da = σ(a) + a * σ(a) * (1 - σ(a))
type SiLUOp struct{}

// Name returns "silu".
func (SiLUOp) Name() string { return "silu" }

// Forward computes a * σ(a).
func (SiLUOp) Forward(a float64) (Result, error) {
	s := sigmoid(a)
	return Result{Value: a * s, Partials: [2]float64{s + a*s*(1-s)}}, nil
}

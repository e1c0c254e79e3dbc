package ops

// ReLUOp represents a rectified linear unit: p = max(0, a).
//
// Local partial:
//   - dp/da = 1 if a > 0, else 0
//
// At a = 0 the subgradient 0 is used.
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward computes max(0, a).
func (ReLUOp) Forward(a float64) (Result, error) {
	if a > 0 {
		return Result{Value: a, Partials: [2]float64{1}}, nil
	}
	return Result{Value: 0, Partials: [2]float64{0}}, nil
}

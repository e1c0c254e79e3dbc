package ops

// MulOp represents multiplication: p = a * b.
//
// Local partials:
//   - dp/da = b
//   - dp/db = a
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Forward computes a * b.
func (MulOp) Forward(a, b float64) (Result, error) {
	return Result{Value: a * b, Partials: [2]float64{b, a}}, nil
}

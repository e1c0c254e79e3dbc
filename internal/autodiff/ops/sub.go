package ops

// SubOp represents subtraction: p = a - b.
//
// Local partials:
//   - dp/da = 1
//   - dp/db = -1
type SubOp struct{}

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Forward computes a - b.
func (SubOp) Forward(a, b float64) (Result, error) {
	return Result{Value: a - b, Partials: [2]float64{1, -1}}, nil
}

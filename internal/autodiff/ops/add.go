package ops

// AddOp represents addition: p = a + b.
//
// Local partials:
//   - dp/da = 1
//   - dp/db = 1
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward computes a + b.
func (AddOp) Forward(a, b float64) (Result, error) {
	return Result{Value: a + b, Partials: [2]float64{1, 1}}, nil
}

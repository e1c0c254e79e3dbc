package ops

// DivOp represents division: p = a / b.
//
// Local partials:
//   - dp/da = 1/b
//   - dp/db = -a/b² = -p/b
//
// Division by zero is a domain error rather than ±Inf.
type DivOp struct{}

// Name returns "div".
func (DivOp) Name() string { return "div" }

// Forward computes a / b.
func (DivOp) Forward(a, b float64) (Result, error) {
	if b == 0 {
		return Result{}, domainError("div", b, "division by zero")
	}
	p := a / b
	return Result{Value: p, Partials: [2]float64{1 / b, -p / b}}, nil
}

package ops

// NegOp represents negation: p = -a (dp/da = -1).
type NegOp struct{}

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Forward computes -a.
func (NegOp) Forward(a float64) (Result, error) {
	return Result{Value: -a, Partials: [2]float64{-1}}, nil
}

// PosOp represents unary plus: p = a (dp/da = 1).
type PosOp struct{}

// Name returns "pos".
func (PosOp) Name() string { return "pos" }

// Forward returns a unchanged.
func (PosOp) Forward(a float64) (Result, error) {
	return Result{Value: a, Partials: [2]float64{1}}, nil
}

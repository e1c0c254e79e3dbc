package ops

// FloorDivOp represents floor division: p = floor(a / b).
//
// The result is piecewise constant, so the gradient is zero almost
// everywhere and undefined at integer boundaries. The boundary is not
// special-cased: the result is always Discrete.
type FloorDivOp struct{}

// Name returns "floordiv".
func (FloorDivOp) Name() string { return "floordiv" }

// Forward computes floor(a / b).
func (FloorDivOp) Forward(a, b float64) (Result, error) {
	if b == 0 {
		return Result{}, domainError("floordiv", b, "integer division by zero")
	}
	return discrete(floorDiv(a, b)), nil
}

package ops

import "math"

// FloorOp represents p = floor(a). The result is Discrete.
type FloorOp struct{}

// Name returns "floor".
func (FloorOp) Name() string { return "floor" }

// Forward computes floor(a).
func (FloorOp) Forward(a float64) (Result, error) {
	return discrete(math.Floor(a)), nil
}

// CeilOp represents p = ceil(a). The result is Discrete.
type CeilOp struct{}

// Name returns "ceil".
func (CeilOp) Name() string { return "ceil" }

// Forward computes ceil(a).
func (CeilOp) Forward(a float64) (Result, error) {
	return discrete(math.Ceil(a)), nil
}

// TruncOp represents truncation toward zero. The result is Discrete.
type TruncOp struct{}

// Name returns "trunc".
func (TruncOp) Name() string { return "trunc" }

// Forward computes trunc(a).
func (TruncOp) Forward(a float64) (Result, error) {
	return discrete(math.Trunc(a)), nil
}

// RoundOp rounds to Digits decimal digits, ties to even. The result is Discrete.
//
// Example:
//
//	RoundOp{Digits: 2}.Forward(2.675)   // 2.67 (2.675 is stored below the tie)
//	RoundOp{Digits: 0}.Forward(2.5)     // 2
//	RoundOp{Digits: -1}.Forward(15)     // 20
type RoundOp struct {
	Digits int
}

// Name returns "round".
func (RoundOp) Name() string { return "round" }

// Forward rounds a.
func (op RoundOp) Forward(a float64) (Result, error) {
	return discrete(roundDigits(a, op.Digits)), nil
}

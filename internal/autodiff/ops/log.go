package ops

import "math"

// LogOp represents the logarithm operation: p = log_k(a).
//
// Local partial:
//   - dp/da = 1/a for the natural logarithm (k = e)
//   - dp/da = 1/(a * ln(k)) otherwise
type LogOp struct {
	Base float64
}

// NaturalLog is the logarithm with base e.
var NaturalLog = LogOp{Base: math.E}

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward computes log_k(a).
func (op LogOp) Forward(a float64) (Result, error) {
	switch {
	case a <= 0:
		return Result{}, domainError("log", a, "logarithm of non-positive value")
	case op.Base <= 0:
		return Result{}, domainError("log", op.Base, "non-positive logarithm base")
	case op.Base == 1:
		return Result{}, domainError("log", op.Base, "logarithm base of one")
	}

	if op.Base == math.E {
		return Result{Value: math.Log(a), Partials: [2]float64{1 / a}}, nil
	}

	lnk := math.Log(op.Base)
	return Result{Value: math.Log(a) / lnk, Partials: [2]float64{1 / (a * lnk)}}, nil
}

// Package ops defines the local derivative rules used by forward-mode automatic differentiation.
//
// Each operation computes, from plain float64 operand values, the value of the
// operation and its local partial derivatives with respect to each operand.
// Operations know nothing about derivative maps: composing local partials with
// the operands' accumulated derivatives is done by the caller (chain rule).
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division (d(a/b)/da = 1/b, d(a/b)/db = -(a/b)/b)
//   - PowOp: power (d(a**b)/da = b*p/a, d(a**b)/db = p*ln(a))
//   - FloorDivOp, ModOp: floor division and modulo
//   - NegOp, PosOp, AbsOp: unary sign operations
//   - SinOp, CosOp, TanOp, ExpOp, LogOp: elementary functions
//   - SqrtOp, RsqrtOp: square root and its reciprocal
//   - TanhOp, SigmoidOp, ReLUOp, SiLUOp: activation functions
//   - FloorOp, CeilOp, TruncOp, RoundOp: rounding (zero gradient)
package ops

// Result is the outcome of applying an operation to concrete operand values.
type Result struct {
	// Value is the operation result p.
	Value float64

	// Partials holds the local partial derivatives [dp/da, dp/db].
	// Unary operations only use the first slot.
	Partials [2]float64

	// Discrete marks operations whose derivative is zero almost everywhere
	// and undefined at discontinuities (floor, round, floor division, ...).
	// Every key reachable through the operands is kept with derivative 0.
	Discrete bool
}

// Unary is an operation of one operand.
type Unary interface {
	// Name returns a short operation name used in errors and traces.
	Name() string

	// Forward computes the value and local partial for operand value a.
	Forward(a float64) (Result, error)
}

// Binary is an operation of two operands.
type Binary interface {
	// Name returns a short operation name used in errors and traces.
	Name() string

	// Forward computes the value and local partials for operand values a and b.
	//
	// Example for MulOp:
	//   a = 3, b = 4
	//   returns: Result{Value: 12, Partials: [4, 3]}
	Forward(a, b float64) (Result, error)
}

// discrete returns a zero-gradient result for value v.
func discrete(v float64) Result {
	return Result{Value: v, Discrete: true}
}

package autodiff

import "github.com/born-ml/gradable/internal/autodiff/ops"

// Add returns a + b. Either operand may be a constant.
func Add(a, b Operand) *Node {
	return mustNode(binary(ops.AddOp{}, a, b))
}

// Sub returns a - b.
func Sub(a, b Operand) *Node {
	return mustNode(binary(ops.SubOp{}, a, b))
}

// Mul returns a * b.
func Mul(a, b Operand) *Node {
	return mustNode(binary(ops.MulOp{}, a, b))
}

// Div returns a / b. Division by zero returns an error matching ErrMathDomain.
func Div(a, b Operand) (*Node, error) {
	return binary(ops.DivOp{}, a, b)
}

// FloorDiv returns floor(a / b) under the zero-gradient convention: every
// node reachable through a or b is kept with derivative 0.
func FloorDiv(a, b Operand) (*Node, error) {
	return binary(ops.FloorDivOp{}, a, b)
}

// Mod returns a - b*floor(a/b), with the sign of b.
//
// With a constant divisor the result follows the zero-gradient convention.
// With a differentiable divisor, d/da = 1 and d/db = -floor(a/b).
func Mod(a, b Operand) (*Node, error) {
	return binary(ops.ModOp{VariableDivisor: isVariable(b)}, a, b)
}

// Pow returns a ** b.
//
// A differentiable exponent requires a positive base; a non-positive base
// then returns an error matching ErrMathDomain.
func Pow(a, b Operand) (*Node, error) {
	return binary(ops.PowOp{VariableExponent: isVariable(b)}, a, b)
}

// Add returns n + other.
func (n *Node) Add(other Operand) *Node {
	return Add(n, other)
}

// Sub returns n - other.
func (n *Node) Sub(other Operand) *Node {
	return Sub(n, other)
}

// Mul returns n * other.
func (n *Node) Mul(other Operand) *Node {
	return Mul(n, other)
}

// Div returns n / other.
func (n *Node) Div(other Operand) (*Node, error) {
	return Div(n, other)
}

// FloorDiv returns floor(n / other).
func (n *Node) FloorDiv(other Operand) (*Node, error) {
	return FloorDiv(n, other)
}

// Mod returns n mod other.
func (n *Node) Mod(other Operand) (*Node, error) {
	return Mod(n, other)
}

// Pow returns n ** other.
func (n *Node) Pow(other Operand) (*Node, error) {
	return Pow(n, other)
}

// Neg returns -n.
func (n *Node) Neg() *Node {
	return mustNode(unary(ops.NegOp{}, n))
}

// Pos returns +n: a new node with the same value and a copy of the
// derivative map. It never returns n itself.
func (n *Node) Pos() *Node {
	return mustNode(unary(ops.PosOp{}, n))
}

// Abs returns |n|. The derivative at 0 is taken as +1.
func (n *Node) Abs() *Node {
	return mustNode(unary(ops.AbsOp{}, n))
}

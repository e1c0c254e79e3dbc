package autodiff

import "github.com/born-ml/gradable/internal/autodiff/ops"

// Sqrt returns sqrt(n). n <= 0 returns ErrMathDomain since the derivative
// 0.5/sqrt(n) is unbounded at 0.
func (n *Node) Sqrt() (*Node, error) {
	return unary(ops.SqrtOp{}, n)
}

// Rsqrt returns 1/sqrt(n).
func (n *Node) Rsqrt() (*Node, error) {
	return unary(ops.RsqrtOp{}, n)
}

// Tanh returns tanh(n).
func (n *Node) Tanh() *Node {
	return mustNode(unary(ops.TanhOp{}, n))
}

// Sigmoid returns 1 / (1 + exp(-n)).
func (n *Node) Sigmoid() *Node {
	return mustNode(unary(ops.SigmoidOp{}, n))
}

// ReLU returns max(0, n), with derivative 0 at n = 0.
func (n *Node) ReLU() *Node {
	return mustNode(unary(ops.ReLUOp{}, n))
}

// SiLU returns n * sigmoid(n).
func (n *Node) SiLU() *Node {
	return mustNode(unary(ops.SiLUOp{}, n))
}

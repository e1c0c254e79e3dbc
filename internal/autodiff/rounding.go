package autodiff

import "github.com/born-ml/gradable/internal/autodiff/ops"

// The operations below are piecewise constant. Their result keeps every node
// reachable through the operand with derivative 0: the dependency exists, the
// local derivative is zero almost everywhere and undefined at the jumps.

// Floor returns floor(n).
func (n *Node) Floor() *Node {
	return mustNode(unary(ops.FloorOp{}, n))
}

// Ceil returns ceil(n).
func (n *Node) Ceil() *Node {
	return mustNode(unary(ops.CeilOp{}, n))
}

// Trunc returns n truncated toward zero.
func (n *Node) Trunc() *Node {
	return mustNode(unary(ops.TruncOp{}, n))
}

// Round returns n rounded to digits decimal places, ties to even.
// Negative digits round to the left of the decimal point.
func (n *Node) Round(digits int) *Node {
	return mustNode(unary(ops.RoundOp{Digits: digits}, n))
}

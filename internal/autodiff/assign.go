package autodiff

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/gradable/internal/autodiff/ops"
)

// The *Assign methods combine a node with a plain constant in place. They
// change n's value and rescale n's own derivative map so it stays meaningful
// for the new value. Nodes previously built from n are unaffected: they hold
// snapshots, not references to n.
//
// These methods are exclusive-writer operations and must not run
// concurrently with any other use of n.

// AddAssign sets n to n + c.
func (n *Node) AddAssign(c float64) {
	_ = n.assign(ops.AddOp{}, c)
}

// SubAssign sets n to n - c.
func (n *Node) SubAssign(c float64) {
	_ = n.assign(ops.SubOp{}, c)
}

// MulAssign sets n to n * c.
func (n *Node) MulAssign(c float64) {
	_ = n.assign(ops.MulOp{}, c)
}

// DivAssign sets n to n / c. On error n is left unchanged.
func (n *Node) DivAssign(c float64) error {
	return n.assign(ops.DivOp{}, c)
}

// FloorDivAssign sets n to floor(n / c). On error n is left unchanged.
func (n *Node) FloorDivAssign(c float64) error {
	return n.assign(ops.FloorDivOp{}, c)
}

// ModAssign sets n to n mod c. On error n is left unchanged.
func (n *Node) ModAssign(c float64) error {
	return n.assign(ops.ModOp{}, c)
}

// PowAssign sets n to n ** c. On error n is left unchanged.
func (n *Node) PowAssign(c float64) error {
	return n.assign(ops.PowOp{}, c)
}

// assign applies op(n, c) to n itself. The self entry stays 1; every other
// entry is scaled by the local partial, or zeroed for discrete ops.
func (n *Node) assign(op ops.Binary, c float64) error {
	res, err := op.Forward(n.value, c)
	if err != nil {
		return err
	}

	n.value = res.Value
	for id := range n.grads {
		if id == n.id {
			continue
		}
		if res.Discrete {
			n.grads[id] = 0
		} else {
			n.grads[id] *= res.Partials[0]
		}
	}

	klog.V(4).InfoS("Combined node in place", "op", op.Name(), "node", n.id, "constant", c, "value", n.value)
	return nil
}

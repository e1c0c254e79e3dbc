package autodiff

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/gradable/internal/autodiff/ops"
)

// unary applies op to a and propagates derivatives.
func unary(op ops.Unary, a Operand) (*Node, error) {
	res, err := op.Forward(a.Value())
	if err != nil {
		return nil, err
	}
	return propagate(op.Name(), res, a), nil
}

// binary applies op to a and b and propagates derivatives.
func binary(op ops.Binary, a, b Operand) (*Node, error) {
	res, err := op.Forward(a.Value(), b.Value())
	if err != nil {
		return nil, err
	}
	return propagate(op.Name(), res, a, b), nil
}

// propagate builds the result node of an operation.
//
// For every key L reachable through the operands:
//
//	result[L] = dp/da * a[L] + dp/db * b[L]
//
// where a missing key counts as 0. For Discrete results every reachable key
// is kept with derivative 0. Operand maps are only read.
func propagate(op string, res ops.Result, operands ...Operand) *Node {
	n := newNode(res.Value)

	for i, o := range operands {
		grads := o.derivatives()
		if grads == nil {
			continue
		}

		if res.Discrete {
			for id := range grads {
				if _, ok := n.grads[id]; !ok {
					n.grads[id] = 0
				}
			}
			continue
		}

		local := res.Partials[i]
		for id, g := range grads {
			n.grads[id] += g * local
		}
	}

	if v := klog.V(6); v.Enabled() {
		v.InfoS("Propagated derivatives", "op", op, "node", n.id, "value", n.value, "entries", len(n.grads))
	}

	return n
}

// mustNode is used for operations that cannot fail.
func mustNode(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Must returns n, or panics if err is non-nil. It is intended for
// expressions whose operands are known to be in the operation's domain:
//
//	y := autodiff.Must(x.Div(autodiff.Const(2)))
func Must(n *Node, err error) *Node {
	return mustNode(n, err)
}

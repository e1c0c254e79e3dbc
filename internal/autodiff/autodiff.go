// Package autodiff implements eager forward-mode automatic differentiation over scalars.
//
// Every Node carries its value together with a derivative map: the partial
// derivative of that value with respect to every node that contributed to it.
// Each operation builds a new Node and its complete map in one step by
// composing the local partials of the operation (see package ops) with the
// maps of its operands. There is no tape and no backward pass.
//
// Architecture:
//   - Node: immutable value + derivative map snapshot, keyed by node ID
//   - Operand: sealed union of *Node and Float (a plain constant)
//   - ops: local derivative rules, one type per operation
//   - propagate: chain-rule composition of local partials with operand maps
//
// Usage:
//
//	x := autodiff.Named("x", 2.0)
//	y := x.Mul(x).Add(autodiff.Sin(x)) // y = x² + sin(x)
//
//	d, ok := autodiff.GradientOf(y, x) // dy/dx = 2x + cos(x)
//	fmt.Println(d, ok)
package autodiff

import (
	"fmt"
	"io"
	"sync/atomic"
)

// ID identifies a node. IDs are issued in increasing order at construction
// and never reused; they are the only thing used to key derivative maps.
type ID uint64

var lastID atomic.Uint64

func newID() ID {
	return ID(lastID.Add(1))
}

// Node is a differentiable scalar.
//
// A node is a snapshot: operations never modify their operands, and a node
// captured in an earlier expression keeps its value and map even if an
// operand is later changed through one of the *Assign methods.
type Node struct {
	id    ID
	name  string      // Display label, cosmetic only
	value float64     // Current numeric result
	grads Derivatives // d(value)/d(key), includes id -> 1
	leaf  bool        // Created from a literal rather than by an operation
}

// newNode allocates a node whose map holds only its own entry.
func newNode(value float64) *Node {
	id := newID()
	return &Node{
		id:    id,
		value: value,
		grads: Derivatives{id: 1},
	}
}

// New creates an anonymous leaf node holding v.
func New(v float64) *Node {
	n := newNode(v)
	n.leaf = true
	return n
}

// Named creates a leaf node holding v, labelled name for diagnostics.
func Named(name string, v float64) *Node {
	n := New(v)
	n.name = name
	return n
}

// ID returns the node identity.
func (n *Node) ID() ID {
	return n.id
}

// Name returns the display label, or "" if none was set.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the display label. The label is cosmetic and takes no part
// in differentiation. Not safe for concurrent use with readers of Name.
func (n *Node) SetName(name string) {
	n.name = name
}

// Value returns the numeric value of the node.
func (n *Node) Value() float64 {
	return n.value
}

// IsLeaf reports whether n was created directly from a literal.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Derivatives returns a copy of the derivative map.
func (n *Node) Derivatives() Derivatives {
	return n.grads.Clone()
}

// Float64 returns the value of the node.
func (n *Node) Float64() float64 {
	return n.value
}

// Int returns the value truncated toward zero.
func (n *Node) Int() int {
	return int(n.value)
}

// String formats the value only, e.g. "2.0".
func (n *Node) String() string {
	return formatValue(n.value)
}

// Format implements fmt.Formatter so that value verbs apply to the node value:
//
//	fmt.Sprintf("%.6f", f) // "2978.867284"
func (n *Node) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = io.WriteString(f, n.String())
	default:
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), n.value)
	}
}

// derivatives implements Operand.
func (n *Node) derivatives() Derivatives {
	return n.grads
}

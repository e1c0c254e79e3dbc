// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides eager forward-mode automatic differentiation over scalars.
//
// Every Node carries its value and the partial derivative of that value with
// respect to every node that contributed to it. Derivatives are accumulated
// while the expression is built; there is no backward pass.
//
// Example:
//
//	import "github.com/born-ml/gradable/autodiff"
//
//	func main() {
//	    x := autodiff.Named("x", 2.0)
//	    y := autodiff.Named("y", 1.0)
//
//	    f := x.Mul(x).Add(autodiff.Sin(x)) // f = x² + sin(x)
//
//	    d, ok := autodiff.GradientOf(f, x) // 2x + cos(x), true
//	    _, ok = autodiff.GradientOf(f, y)  // false: f never depended on y
//	}
package autodiff

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/gradable/internal/autodiff"
)

// Node is a differentiable scalar: a value and its derivative map.
type Node = autodiff.Node

// ID identifies a node in derivative maps.
type ID = autodiff.ID

// Derivatives maps node IDs to partial derivatives.
type Derivatives = autodiff.Derivatives

// Operand is either a *Node or a Float constant.
type Operand = autodiff.Operand

// Float is a plain numeric constant.
type Float = autodiff.Float

// Differentiable is the elementary-function capability of *Node and Float.
type Differentiable[T any] = autodiff.Differentiable[T]

// Initializer supplies the value of a leaf to NewLeaf.
type Initializer = autodiff.Initializer

// QueryConfig controls gradient lookups.
type QueryConfig = autodiff.QueryConfig

// QueryOption configures a QueryConfig.
type QueryOption = autodiff.QueryOption

// DomainError describes an operation evaluated outside its domain.
type DomainError = autodiff.DomainError

// Errors.
var (
	ErrMathDomain   = autodiff.ErrMathDomain
	ErrTypeMismatch = autodiff.ErrTypeMismatch
)

// New creates an anonymous leaf node.
func New(v float64) *Node {
	return autodiff.New(v)
}

// Named creates a labelled leaf node.
func Named(name string, v float64) *Node {
	return autodiff.Named(name, v)
}

// NewLeaf creates a leaf from exactly one initializer.
//
// Example:
//
//	x, err := autodiff.NewLeaf(autodiff.WithNamedValue("x", 2))
func NewLeaf(inits ...Initializer) (*Node, error) {
	return autodiff.NewLeaf(inits...)
}

// WithValue is the positional leaf initializer.
func WithValue(v float64) Initializer {
	return autodiff.WithValue(v)
}

// WithNamedValue is the named leaf initializer.
func WithNamedValue(name string, v float64) Initializer {
	return autodiff.WithNamedValue(name, v)
}

// Const converts a Go number into a constant operand.
func Const[T constraints.Integer | constraints.Float](v T) Float {
	return autodiff.Const(v)
}

// Must returns n or panics if err is non-nil.
func Must(n *Node, err error) *Node {
	return autodiff.Must(n, err)
}

// Add returns a + b.
func Add(a, b Operand) *Node { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Operand) *Node { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b Operand) *Node { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div(a, b Operand) (*Node, error) { return autodiff.Div(a, b) }

// FloorDiv returns floor(a / b) with zero gradient.
func FloorDiv(a, b Operand) (*Node, error) { return autodiff.FloorDiv(a, b) }

// Mod returns a mod b with the sign of b.
func Mod(a, b Operand) (*Node, error) { return autodiff.Mod(a, b) }

// Pow returns a ** b.
func Pow(a, b Operand) (*Node, error) { return autodiff.Pow(a, b) }

// Sin returns sin(x).
func Sin[T Differentiable[T]](x T) T { return autodiff.Sin(x) }

// Cos returns cos(x).
func Cos[T Differentiable[T]](x T) T { return autodiff.Cos(x) }

// Tan returns tan(x).
func Tan[T Differentiable[T]](x T) (T, error) { return autodiff.Tan(x) }

// Exp returns e^x.
func Exp[T Differentiable[T]](x T) T { return autodiff.Exp(x) }

// Log returns ln(x).
func Log[T Differentiable[T]](x T) (T, error) { return autodiff.Log(x) }

// LogBase returns the base-k logarithm of x.
func LogBase[T Differentiable[T]](x T, base float64) (T, error) { return autodiff.LogBase(x, base) }

// GradientOf returns d(n)/d(wrt). ok is false when n never depended on wrt,
// unless TreatMissingAsZero is given.
func GradientOf(n, wrt *Node, opts ...QueryOption) (float64, bool) {
	return autodiff.GradientOf(n, wrt, opts...)
}

// TreatMissingAsZero reports "no relation" as a zero derivative.
func TreatMissingAsZero() QueryOption {
	return autodiff.TreatMissingAsZero()
}

// Inspect describes d(n)/d(wrt) on one line.
func Inspect(n, wrt *Node) string {
	return autodiff.Inspect(n, wrt)
}

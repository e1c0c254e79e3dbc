package autodiff

import (
	"golang.org/x/exp/constraints"
)

// Operand is either a *Node or a Float constant.
//
// The interface is sealed: no other type can implement it. Constants take
// part in value math but contribute no entries to derivative maps.
type Operand interface {
	// Value returns the numeric value of the operand.
	Value() float64

	// derivatives returns the derivative map, or nil for constants.
	derivatives() Derivatives
}

// Float is a plain numeric constant usable wherever an Operand is expected.
type Float float64

// Const converts any Go integer or float into a Float constant.
func Const[T constraints.Integer | constraints.Float](v T) Float {
	return Float(v)
}

// Value returns f as a float64.
func (f Float) Value() float64 {
	return float64(f)
}

func (Float) derivatives() Derivatives {
	return nil
}

// isVariable reports whether o carries derivatives.
func isVariable(o Operand) bool {
	return o.derivatives() != nil
}

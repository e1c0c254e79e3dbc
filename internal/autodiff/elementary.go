package autodiff

import "github.com/born-ml/gradable/internal/autodiff/ops"

// Differentiable is the elementary-function capability shared by *Node and
// Float. Generic code written against it accepts both, and the free functions
// Sin, Cos, Tan, Exp, Log and LogBase dispatch to it without type switches.
type Differentiable[T any] interface {
	Sin() T
	Cos() T
	Tan() (T, error)
	Exp() T
	Log() (T, error)
	LogBase(base float64) (T, error)
}

var (
	_ Differentiable[*Node] = (*Node)(nil)
	_ Differentiable[Float] = Float(0)
)

// Sin returns sin(x), x in radians.
func Sin[T Differentiable[T]](x T) T { return x.Sin() }

// Cos returns cos(x), x in radians.
func Cos[T Differentiable[T]](x T) T { return x.Cos() }

// Tan returns tan(x), x in radians. Poles return ErrMathDomain.
func Tan[T Differentiable[T]](x T) (T, error) { return x.Tan() }

// Exp returns e^x.
func Exp[T Differentiable[T]](x T) T { return x.Exp() }

// Log returns the natural logarithm of x. x <= 0 returns ErrMathDomain.
func Log[T Differentiable[T]](x T) (T, error) { return x.Log() }

// LogBase returns the base-k logarithm of x.
func LogBase[T Differentiable[T]](x T, base float64) (T, error) { return x.LogBase(base) }

// Sin returns sin(n). d/dn = cos(n).
func (n *Node) Sin() *Node {
	return mustNode(unary(ops.SinOp{}, n))
}

// Cos returns cos(n). d/dn = -sin(n).
func (n *Node) Cos() *Node {
	return mustNode(unary(ops.CosOp{}, n))
}

// Tan returns tan(n). d/dn = 1/cos²(n).
func (n *Node) Tan() (*Node, error) {
	return unary(ops.TanOp{}, n)
}

// Exp returns e^n. d/dn = e^n.
func (n *Node) Exp() *Node {
	return mustNode(unary(ops.ExpOp{}, n))
}

// Log returns ln(n). d/dn = 1/n.
func (n *Node) Log() (*Node, error) {
	return unary(ops.NaturalLog, n)
}

// LogBase returns log_base(n). d/dn = 1/(n*ln(base)).
func (n *Node) LogBase(base float64) (*Node, error) {
	return unary(ops.LogOp{Base: base}, n)
}

// applyFloat evaluates op on a constant with the same domain checks as the
// node forms.
func applyFloat(op ops.Unary, f Float) (Float, error) {
	res, err := op.Forward(float64(f))
	if err != nil {
		return 0, err
	}
	return Float(res.Value), nil
}

// mustFloat is used for operations that cannot fail.
func mustFloat(f Float, err error) Float {
	if err != nil {
		panic(err)
	}
	return f
}

// Sin returns sin(f).
func (f Float) Sin() Float {
	return mustFloat(applyFloat(ops.SinOp{}, f))
}

// Cos returns cos(f).
func (f Float) Cos() Float {
	return mustFloat(applyFloat(ops.CosOp{}, f))
}

// Tan returns tan(f).
func (f Float) Tan() (Float, error) {
	return applyFloat(ops.TanOp{}, f)
}

// Exp returns e^f.
func (f Float) Exp() Float {
	return mustFloat(applyFloat(ops.ExpOp{}, f))
}

// Log returns ln(f).
func (f Float) Log() (Float, error) {
	return applyFloat(ops.NaturalLog, f)
}

// LogBase returns log_base(f).
func (f Float) LogBase(base float64) (Float, error) {
	return applyFloat(ops.LogOp{Base: base}, f)
}

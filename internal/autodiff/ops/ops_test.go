package ops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradable/internal/autodiff/ops"
)

const delta = 1e-12

// TestBinaryOps_Forward checks values and local partials of binary operations.
func TestBinaryOps_Forward(t *testing.T) {
	tests := []struct {
		name     string
		op       ops.Binary
		a, b     float64
		value    float64
		partials [2]float64
		discrete bool
	}{
		{"add", ops.AddOp{}, 3, 4, 7, [2]float64{1, 1}, false},
		{"sub", ops.SubOp{}, 3, 4, -1, [2]float64{1, -1}, false},
		{"mul", ops.MulOp{}, 3, 4, 12, [2]float64{4, 3}, false},
		{"div", ops.DivOp{}, 3, 4, 0.75, [2]float64{0.25, -0.1875}, false},
		{"pow const exponent", ops.PowOp{}, 2, 3, 8, [2]float64{12, 0}, false},
		{"pow variable exponent", ops.PowOp{VariableExponent: true}, 2, 3, 8, [2]float64{12, 8 * math.Ln2}, false},
		{"pow negative base integer exponent", ops.PowOp{}, -2, 3, -8, [2]float64{12, 0}, false},
		{"pow zero base", ops.PowOp{}, 0, 2, 0, [2]float64{0, 0}, false},
		{"pow zero base unit exponent", ops.PowOp{}, 0, 1, 0, [2]float64{1, 0}, false},
		{"pow zero exponent", ops.PowOp{}, 2, 0, 1, [2]float64{0, 0}, false},
		{"mod variable divisor", ops.ModOp{VariableDivisor: true}, 7, 3, 1, [2]float64{1, -2}, false},
		{"mod variable divisor negative dividend", ops.ModOp{VariableDivisor: true}, -7, 3, 2, [2]float64{1, 3}, false},
		{"mod constant divisor", ops.ModOp{}, 7, 3, 1, [2]float64{}, true},
		{"floordiv", ops.FloorDivOp{}, 7, 2, 3, [2]float64{}, true},
		{"floordiv negative", ops.FloorDivOp{}, -7, 2, -4, [2]float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op.Forward(tt.a, tt.b)
			require.NoError(t, err)

			assert.InDelta(t, tt.value, res.Value, delta)
			assert.InDelta(t, tt.partials[0], res.Partials[0], delta, "d/da")
			assert.InDelta(t, tt.partials[1], res.Partials[1], delta, "d/db")
			assert.Equal(t, tt.discrete, res.Discrete)
		})
	}
}

// TestUnaryOps_Forward checks values and local partials of unary operations.
func TestUnaryOps_Forward(t *testing.T) {
	tests := []struct {
		name     string
		op       ops.Unary
		a        float64
		value    float64
		partial  float64
		discrete bool
	}{
		{"neg", ops.NegOp{}, 2, -2, -1, false},
		{"pos", ops.PosOp{}, 2, 2, 1, false},
		{"abs negative", ops.AbsOp{}, -3, 3, -1, false},
		{"abs positive", ops.AbsOp{}, 3, 3, 1, false},
		{"abs zero", ops.AbsOp{}, 0, 0, 1, false},
		{"sin", ops.SinOp{}, 0, 0, 1, false},
		{"cos", ops.CosOp{}, 0, 1, 0, false},
		{"tan", ops.TanOp{}, 0, 0, 1, false},
		{"tan pi/4", ops.TanOp{}, math.Pi / 4, 1, 2, false},
		{"exp", ops.ExpOp{}, 1, math.E, math.E, false},
		{"log natural", ops.NaturalLog, math.E, 1, 1 / math.E, false},
		{"log base 10", ops.LogOp{Base: 10}, 100, 2, 1 / (100 * math.Ln10), false},
		{"log base 2", ops.LogOp{Base: 2}, 8, 3, 1 / (8 * math.Ln2), false},
		{"floor", ops.FloorOp{}, 2.7, 2, 0, true},
		{"floor negative", ops.FloorOp{}, -2.1, -3, 0, true},
		{"ceil", ops.CeilOp{}, 2.1, 3, 0, true},
		{"trunc", ops.TruncOp{}, -2.7, -2, 0, true},
		{"round digits", ops.RoundOp{Digits: 2}, 2.675, 2.67, 0, true},
		{"round half to even down", ops.RoundOp{}, 2.5, 2, 0, true},
		{"round half to even up", ops.RoundOp{}, 3.5, 4, 0, true},
		{"round tens", ops.RoundOp{Digits: -1}, 15, 20, 0, true},
		{"round tens tie", ops.RoundOp{Digits: -1}, 25, 20, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op.Forward(tt.a)
			require.NoError(t, err)

			assert.InDelta(t, tt.value, res.Value, delta)
			assert.InDelta(t, tt.partial, res.Partials[0], delta)
			assert.Equal(t, tt.discrete, res.Discrete)
		})
	}
}

// TestOps_DomainErrors checks that undefined scalar math is reported, not
// turned into NaN or Inf.
func TestOps_DomainErrors(t *testing.T) {
	binary := []struct {
		name string
		op   ops.Binary
		a, b float64
	}{
		{"div by zero", ops.DivOp{}, 1, 0},
		{"floordiv by zero", ops.FloorDivOp{}, 1, 0},
		{"mod by zero", ops.ModOp{}, 1, 0},
		{"mod by zero variable", ops.ModOp{VariableDivisor: true}, 1, 0},
		{"pow zero base variable exponent", ops.PowOp{VariableExponent: true}, 0, 2},
		{"pow negative base variable exponent", ops.PowOp{VariableExponent: true}, -1, 2},
		{"pow zero to negative", ops.PowOp{}, 0, -1},
		{"pow negative to fraction", ops.PowOp{}, -8, 1.0 / 3},
		{"pow zero to fraction", ops.PowOp{}, 0, 0.5},
		{"pow zero to small fraction", ops.PowOp{}, 0, 1e-3},
	}
	for _, tt := range binary {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Forward(tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ops.ErrMathDomain)

			var de *ops.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.op.Name(), de.Op)
		})
	}

	unary := []struct {
		name string
		op   ops.Unary
		a    float64
	}{
		{"log negative", ops.NaturalLog, -1},
		{"log zero", ops.NaturalLog, 0},
		{"log base one", ops.LogOp{Base: 1}, 2},
		{"log base zero", ops.LogOp{Base: 0}, 2},
		{"log negative base", ops.LogOp{Base: -2}, 2},
		{"tan pi/2", ops.TanOp{}, math.Pi / 2},
		{"tan -pi/2", ops.TanOp{}, -math.Pi / 2},
		{"tan 3pi/2", ops.TanOp{}, 3 * math.Pi / 2},
		{"tan 101pi/2", ops.TanOp{}, 101 * math.Pi / 2},
	}
	for _, tt := range unary {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Forward(tt.a)
			require.Error(t, err)
			assert.ErrorIs(t, err, ops.ErrMathDomain)
		})
	}
}

// TestTanOp_NearPole checks that values close to, but not at, a pole are fine.
func TestTanOp_NearPole(t *testing.T) {
	res, err := ops.TanOp{}.Forward(1.57)
	require.NoError(t, err)
	assert.Greater(t, res.Value, 1000.0)
	assert.Greater(t, res.Partials[0], 1e6)

	res, err = ops.TanOp{}.Forward(math.Pi/2 - 1e-9)
	require.NoError(t, err)
	assert.Greater(t, res.Value, 1e8)
}

// TestTanOp_PoleBand checks that the float64 neighbours of a pole are
// rejected along with the nearest float64 itself.
func TestTanOp_PoleBand(t *testing.T) {
	for _, a := range []float64{
		math.Nextafter(math.Pi/2, 0),
		math.Nextafter(math.Pi/2, 2),
		math.Nextafter(-math.Pi/2, 0),
	} {
		_, err := ops.TanOp{}.Forward(a)
		assert.ErrorIs(t, err, ops.ErrMathDomain, "a=%v", a)
	}
}

// TestPowOp_ZeroBase checks zero bases with exponents at or above one.
func TestPowOp_ZeroBase(t *testing.T) {
	res, err := ops.PowOp{}.Forward(0, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Value)
	assert.Equal(t, 0.0, res.Partials[0])
	assert.False(t, math.IsNaN(res.Partials[0]))
}

// TestDomainError_Message checks the error text names the operation.
func TestDomainError_Message(t *testing.T) {
	_, err := ops.DivOp{}.Forward(1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "div")
	assert.Contains(t, err.Error(), "division by zero")
	assert.Contains(t, err.Error(), ops.ErrMathDomain.Error())
}

// TestOps_Names checks every operation reports a distinct name.
func TestOps_Names(t *testing.T) {
	names := []string{
		ops.AddOp{}.Name(), ops.SubOp{}.Name(), ops.MulOp{}.Name(), ops.DivOp{}.Name(),
		ops.PowOp{}.Name(), ops.FloorDivOp{}.Name(), ops.ModOp{}.Name(),
		ops.NegOp{}.Name(), ops.PosOp{}.Name(), ops.AbsOp{}.Name(),
		ops.SinOp{}.Name(), ops.CosOp{}.Name(), ops.TanOp{}.Name(), ops.ExpOp{}.Name(),
		ops.NaturalLog.Name(), ops.FloorOp{}.Name(), ops.CeilOp{}.Name(),
		ops.TruncOp{}.Name(), ops.RoundOp{}.Name(),
	}
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate op name %q", n)
		seen[n] = true
	}
}

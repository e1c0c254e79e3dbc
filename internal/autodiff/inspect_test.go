package autodiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	x := Named("x", 3)
	y := Named("y", 1)
	f := x.Mul(x)
	f.SetName("f")

	assert.Equal(t, "df/dx(x=3.0) = 6.0", Inspect(f, x))
	assert.Equal(t, "No relation between f and y", Inspect(f, y))

	g := New(1)
	assert.Equal(t, "dDependent/dIndependent(Independent=1.0) = 2.0", Inspect(g.Mul(Const(2)), g))
	assert.Equal(t, "No relation between Dependent and Independent", Inspect(g, New(1)))

	assert.Equal(t, "df/dx(x=3.0) = 0.0", Inspect(func() *Node { n := x.Floor(); n.SetName("f"); return n }(), x))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2, "2.0"},
		{-0.5, "-0.5"},
		{11916.415801330368, "11916.415801330368"},
		{1234567, "1234567.0"},
		{0.0001, "0.0001"},
		{1e-5, "1e-05"},
		{1e16, "1e+16"},
		{123456789012345678, "1.2345678901234568e+17"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.v))
	}
}

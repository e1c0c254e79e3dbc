package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradable/internal/autodiff"
)

func TestNewLeaf(t *testing.T) {
	t.Run("positional", func(t *testing.T) {
		x, err := autodiff.NewLeaf(autodiff.WithValue(1.5))
		require.NoError(t, err)
		assert.Equal(t, 1.5, x.Value())
		assert.Empty(t, x.Name())
		assert.True(t, x.IsLeaf())
	})

	t.Run("named", func(t *testing.T) {
		x, err := autodiff.NewLeaf(autodiff.WithNamedValue("x", 2))
		require.NoError(t, err)
		assert.Equal(t, 2.0, x.Value())
		assert.Equal(t, "x", x.Name())
		assert.Equal(t, 1.0, requireGrad(t, x, x))
	})
}

func TestNewLeaf_TypeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		inits []autodiff.Initializer
		msg   string
	}{
		{"none", nil, "missing 1 required initializer"},
		{"mixed", []autodiff.Initializer{autodiff.WithValue(1), autodiff.WithNamedValue("x", 2)}, "multiple values"},
		{"two positional", []autodiff.Initializer{autodiff.WithValue(1), autodiff.WithValue(2)}, "exactly one initializer"},
		{"two named", []autodiff.Initializer{autodiff.WithNamedValue("x", 1), autodiff.WithNamedValue("y", 2)}, "exactly one initializer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := autodiff.NewLeaf(tt.inits...)
			assert.Nil(t, n)
			require.ErrorIs(t, err, autodiff.ErrTypeMismatch)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

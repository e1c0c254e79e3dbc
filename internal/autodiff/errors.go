package autodiff

import (
	"errors"

	"github.com/born-ml/gradable/internal/autodiff/ops"
)

// Common errors.
var (
	// ErrMathDomain is returned when the scalar math of an operation is
	// undefined at the current operand values.
	ErrMathDomain = ops.ErrMathDomain

	// ErrTypeMismatch is returned by NewLeaf when it is not given exactly one
	// initializer.
	ErrTypeMismatch = errors.New("type mismatch")
)

// DomainError describes an operation evaluated outside its domain.
// It matches ErrMathDomain under errors.Is.
type DomainError = ops.DomainError

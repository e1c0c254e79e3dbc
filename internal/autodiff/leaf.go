package autodiff

import (
	"github.com/pkg/errors"
)

// Initializer supplies the value of a leaf to NewLeaf, either positionally
// (WithValue) or with a name (WithNamedValue).
type Initializer struct {
	name  string
	value float64
	named bool
}

// WithValue is the positional initializer.
func WithValue(v float64) Initializer {
	return Initializer{value: v}
}

// WithNamedValue is the named initializer; name becomes the display label.
func WithNamedValue(name string, v float64) Initializer {
	return Initializer{name: name, value: v, named: true}
}

// NewLeaf creates a leaf from exactly one initializer.
//
// It fails with ErrTypeMismatch when given no initializer, when positional
// and named initializers are mixed, or when more than one is given.
func NewLeaf(inits ...Initializer) (*Node, error) {
	var positional, named int
	for _, init := range inits {
		if init.named {
			named++
		} else {
			positional++
		}
	}

	switch {
	case positional > 0 && named > 0:
		return nil, errors.Wrap(ErrTypeMismatch, "leaf got multiple values for its initializer")
	case len(inits) == 0:
		return nil, errors.Wrap(ErrTypeMismatch, "leaf missing 1 required initializer")
	case len(inits) > 1:
		return nil, errors.Wrapf(ErrTypeMismatch, "leaf takes exactly one initializer (%d given)", len(inits))
	}

	init := inits[0]
	if init.named {
		return Named(init.name, init.value), nil
	}
	return New(init.value), nil
}

package autodiff

import (
	"maps"
	"slices"
)

// Derivatives maps a node ID to the partial derivative of the owning node's
// value with respect to that node, all other nodes held fixed.
//
// A missing key means the owner never depended on that node. A present key
// with value 0 means it did, but the local derivative is zero or not
// meaningful (zero-gradient convention).
type Derivatives map[ID]float64

// Clone returns a copy of d.
func (d Derivatives) Clone() Derivatives {
	out := make(Derivatives, len(d))
	maps.Copy(out, d)
	return out
}

// Keys returns the IDs in d in increasing order.
func (d Derivatives) Keys() []ID {
	return slices.Sorted(maps.Keys(d))
}

// Has reports whether id is a key of d.
func (d Derivatives) Has(id ID) bool {
	_, ok := d[id]
	return ok
}

package autodiff

// QueryConfig controls gradient lookups.
type QueryConfig struct {
	// TreatMissingAsZero reports "no relation" as a zero derivative instead
	// of ok == false. The distinction is lost when set.
	TreatMissingAsZero bool
}

// QueryOption configures a QueryConfig.
type QueryOption func(*QueryConfig)

// TreatMissingAsZero makes GradientOf return (0, true) when there is no relation.
func TreatMissingAsZero() QueryOption {
	return func(c *QueryConfig) {
		c.TreatMissingAsZero = true
	}
}

// DefaultQueryConfig returns the default configuration, which keeps
// "no relation" distinguishable from a zero derivative.
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{}
}

// Grad returns d(n)/d(wrt). ok is false when n never depended on wrt.
// A zero derivative from a non-differentiable operation still reports ok.
func (n *Node) Grad(wrt *Node) (d float64, ok bool) {
	d, ok = n.grads[wrt.id]
	return d, ok
}

// GradientOf returns d(n)/d(wrt).
//
// By default ok is false when n never depended on wrt:
//
//	d, ok := autodiff.GradientOf(f, y)            // 0, false: no relation
//	d, ok := autodiff.GradientOf(f, y,
//	    autodiff.TreatMissingAsZero())            // 0, true
func GradientOf(n, wrt *Node, opts ...QueryOption) (float64, bool) {
	cfg := DefaultQueryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d, ok := n.Grad(wrt)
	if !ok && cfg.TreatMissingAsZero {
		return 0, true
	}
	return d, ok
}

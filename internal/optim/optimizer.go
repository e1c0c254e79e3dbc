// Package optim implements gradient-based optimizers over scalar leaf nodes.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Gradients come straight from the loss node's derivative map, so there is
// no backward pass and nothing to zero between steps. Parameters are updated
// in place; rebuild the loss from the parameters after every step.
//
// Example usage:
//
//	x := autodiff.Named("x", 5)
//	optimizer := optim.NewAdam([]*autodiff.Node{x}, optim.AdamConfig{LR: 0.1})
//
//	for range 100 {
//	    d := x.Sub(autodiff.Const(3))
//	    optimizer.Step(d.Mul(d)) // loss = (x - 3)²
//	}
package optim

import (
	"github.com/born-ml/gradable/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates every parameter the loss depends on, in place.
	// Parameters unrelated to loss are skipped.
	//
	// Example:
	//   loss := model(params)
	//   optimizer.Step(loss)
	Step(loss *autodiff.Node)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// getGradient returns d(loss)/d(param), and false when loss does not depend on param.
func getGradient(loss, param *autodiff.Node) (float64, bool) {
	if loss == nil || param == nil {
		return 0, false
	}
	return autodiff.GradientOf(loss, param)
}

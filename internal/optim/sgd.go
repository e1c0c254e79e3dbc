package optim

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/gradable/internal/autodiff"
)

// SGD implements Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for range steps {
//	    optimizer.Step(loss(params))
//	}
type SGD struct {
	params     []*autodiff.Node
	lr         float64
	momentum   float64
	velocities map[autodiff.ID]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*autodiff.Node, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[autodiff.ID]float64),
	}
}

// Step performs a single optimization step.
//
// Parameters with no relation to loss are skipped. A nil loss is a no-op.
func (s *SGD) Step(loss *autodiff.Node) {
	if loss == nil {
		return
	}

	for _, param := range s.params {
		grad, ok := getGradient(loss, param)
		if !ok {
			continue
		}

		update := grad
		if s.momentum != 0 {
			update = s.momentum*s.velocities[param.ID()] + grad
			s.velocities[param.ID()] = update
		}

		param.SubAssign(s.lr * update)
	}

	klog.V(4).InfoS("SGD step", "loss", loss.Value(), "params", len(s.params), "lr", s.lr)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// Velocity returns the momentum buffer of param, 0 before its first update.
func (s *SGD) Velocity(param *autodiff.Node) float64 {
	return s.velocities[param.ID()]
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers over scalar leaf nodes.
//
// # Overview
//
// This package contains:
//   - SGD: Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradable/autodiff"
//	    "github.com/born-ml/gradable/optim"
//	)
//
//	func main() {
//	    x := autodiff.Named("x", 5)
//
//	    optimizer := optim.NewAdam(
//	        []*autodiff.Node{x},
//	        optim.AdamConfig{LR: 0.1},
//	    )
//
//	    for range 500 {
//	        d := x.Sub(autodiff.Const(3))
//	        optimizer.Step(d.Mul(d)) // loss = (x - 3)²
//	    }
//	}
//
// # Parameters
//
// Parameters are nodes, usually leaves. Step reads d(loss)/d(param) from the
// loss node and updates each parameter in place with SubAssign. Loss nodes
// built before a step keep their old values; build a new loss every step.
package optim

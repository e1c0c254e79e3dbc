// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"fmt"

	"github.com/born-ml/gradable/autodiff"
	"github.com/born-ml/gradable/optim"
)

// Fits y = w*x + b to points on y = 2x + 1.
func ExampleNewSGD() {
	w := autodiff.Named("w", 0)
	b := autodiff.Named("b", 0)
	optimizer := optim.NewSGD([]*autodiff.Node{w, b}, optim.SGDConfig{LR: 0.05})

	xs := []float64{-1, 0, 1, 2}
	for range 1000 {
		loss := autodiff.New(0)
		for _, x := range xs {
			pred := w.Mul(autodiff.Float(x)).Add(b)
			diff := pred.Sub(autodiff.Float(2*x + 1))
			loss = loss.Add(diff.Mul(diff))
		}
		optimizer.Step(loss)
	}

	fmt.Printf("w=%.3f b=%.3f\n", w, b)
	// Output:
	// w=2.000 b=1.000
}

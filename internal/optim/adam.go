package optim

import (
	"math"

	"k8s.io/klog/v2"

	"github.com/born-ml/gradable/internal/autodiff"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*autodiff.Node
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                     // Timestep for bias correction
	m      map[autodiff.ID]float64 // First moment estimates
	v      map[autodiff.ID]float64 // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(params []*autodiff.Node, config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[autodiff.ID]float64),
		v:      make(map[autodiff.ID]float64),
	}
}

// Step performs a single optimization step using Adam algorithm.
//
// Applies Adam update to all parameters:
//  1. Update biased first moment estimate
//  2. Update biased second moment estimate
//  3. Compute bias-corrected moment estimates
//  4. Update parameters
//
// Parameters with no relation to loss are skipped. A nil loss is a no-op and
// does not advance the step count.
func (a *Adam) Step(loss *autodiff.Node) {
	if loss == nil {
		return
	}

	a.t++

	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad, ok := getGradient(loss, param)
		if !ok {
			continue
		}

		id := param.ID()
		a.m[id] = a.beta1*a.m[id] + (1-a.beta1)*grad
		a.v[id] = a.beta2*a.v[id] + (1-a.beta2)*grad*grad

		mHat := a.m[id] / biasCorrection1
		vHat := a.v[id] / biasCorrection2

		param.SubAssign(a.lr * mHat / (math.Sqrt(vHat) + a.eps))
	}

	klog.V(4).InfoS("Adam step", "loss", loss.Value(), "step", a.t, "lr", a.lr)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// Steps returns the number of steps taken.
func (a *Adam) Steps() int {
	return a.t
}

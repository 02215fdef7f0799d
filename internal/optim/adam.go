package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Adam implements Adaptive Moment Estimation.
//
// Update rule:
//
//	m     = beta1 * m + (1-beta1) * gradient       // first moment
//	v     = beta2 * v + (1-beta2) * gradient²      // second moment
//	m_hat = m / (1 - beta1^t)                      // bias correction
//	v_hat = v / (1 - beta2^t)
//	delta = -lr / (epsilon + sqrt(v_hat)) * m_hat
//
// The beta^t products are tracked incrementally (multiplied by beta each
// call) rather than recomputed with Pow. Bias-correction divisors approach
// 1 as the step count grows, so early steps get amplified correction and
// later steps converge to the raw moving averages.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[T tensor.Float, B tensor.Backend] struct {
	state
	beta1, beta2 float64
	eps          float64
	m, v         *tensor.Tensor[T, B]
	// Running beta^t products for bias correction, both starting at 1.
	beta1Pow, beta2Pow float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    Rate       // Learning rate (nil: Fixed(1e-3))
	Betas [2]float64 // Moment decay factors, each in range [0, 1)
	Eps   float64    // Division guard (0: 1e-8)
}

// DefaultAdamConfig returns the published defaults.
func DefaultAdamConfig() AdamConfig {
	return AdamConfig{
		LR:    Fixed(DefaultLR),
		Betas: [2]float64{0.9, 0.999},
		Eps:   1e-8,
	}
}

// NewAdam creates a new Adam optimizer.
func NewAdam[T tensor.Float, B tensor.Backend](config AdamConfig) (*Adam[T, B], error) {
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	if err := validateUnitInterval("beta1", config.Betas[0]); err != nil {
		return nil, err
	}
	if err := validateUnitInterval("beta2", config.Betas[1]); err != nil {
		return nil, err
	}
	if err := validateEpsilon(config.Eps); err != nil {
		return nil, err
	}
	return &Adam[T, B]{
		state:    newState(config.LR),
		beta1:    config.Betas[0],
		beta2:    config.Betas[1],
		eps:      config.Eps,
		beta1Pow: 1,
		beta2Pow: 1,
	}, nil
}

// MustNewAdam is NewAdam panicking on invalid configuration.
func MustNewAdam[T tensor.Float, B tensor.Backend](config AdamConfig) *Adam[T, B] {
	opt, err := NewAdam[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update advances both moment estimates and returns the bias-corrected delta.
func (o *Adam[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	m, err := ensureState(o.m, grad)
	if err != nil {
		return nil, err
	}
	v, err := ensureState(o.v, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()
	o.beta1Pow *= o.beta1
	o.beta2Pow *= o.beta2

	o.m = m.MulScalar(T(o.beta1)).Add(grad.MulScalar(T(1 - o.beta1)))
	o.v = v.MulScalar(T(o.beta2)).Add(grad.Square().MulScalar(T(1 - o.beta2)))

	mHat := o.m.DivScalar(T(1 - o.beta1Pow))
	vHat := o.v.DivScalar(T(1 - o.beta2Pow))

	denom := vHat.Sqrt().AddScalar(T(o.eps))
	return mHat.Div(denom).MulScalar(T(-lr)), nil
}

// Apply returns params + Update(grad).
func (o *Adam[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// AdaBelief adapts the step size to the "belief" in the current gradient:
// the second moment tracks the deviation of the gradient from its own
// moving average rather than from zero.
//
// Update rule:
//
//	m     = beta1 * m + (1-beta1) * gradient
//	s     = beta2 * s + (1-beta2) * (gradient - m)² + epsilon
//	m_hat = m / (1 - beta1^t)
//	s_hat = s / (1 - beta2^t)
//	delta = -lr * m_hat / (sqrt(s_hat) + epsilon)
//
// The epsilon added inside the s recurrence keeps s strictly positive even
// when the gradient exactly matches its moving average.
//
// Reference: "AdaBelief Optimizer: Adapting Stepsizes by the Belief in
// Observed Gradients" (Zhuang et al., 2020)
type AdaBelief[T tensor.Float, B tensor.Backend] struct {
	state
	beta1, beta2 float64
	eps          float64
	m, s         *tensor.Tensor[T, B]
	// Running beta^t products for bias correction, both starting at 1.
	beta1Pow, beta2Pow float64
}

// AdaBeliefConfig holds configuration for the AdaBelief optimizer.
type AdaBeliefConfig struct {
	LR    Rate       // Learning rate (nil: Fixed(1e-3))
	Betas [2]float64 // Moment decay factors, each in range [0, 1)
	Eps   float64    // Division guard (0: 1e-16)
}

// DefaultAdaBeliefConfig returns the published defaults.
func DefaultAdaBeliefConfig() AdaBeliefConfig {
	return AdaBeliefConfig{
		LR:    Fixed(DefaultLR),
		Betas: [2]float64{0.9, 0.999},
		Eps:   1e-16,
	}
}

// NewAdaBelief creates a new AdaBelief optimizer.
func NewAdaBelief[T tensor.Float, B tensor.Backend](config AdaBeliefConfig) (*AdaBelief[T, B], error) {
	if config.Eps == 0 {
		config.Eps = 1e-16
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
	return &AdaBelief[T, B]{
		state:    newState(config.LR),
		beta1:    config.Betas[0],
		beta2:    config.Betas[1],
		eps:      config.Eps,
		beta1Pow: 1,
		beta2Pow: 1,
	}, nil
}

// MustNewAdaBelief is NewAdaBelief panicking on invalid configuration.
func MustNewAdaBelief[T tensor.Float, B tensor.Backend](config AdaBeliefConfig) *AdaBelief[T, B] {
	opt, err := NewAdaBelief[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update advances the first moment and the deviation moment, then returns
// the bias-corrected delta.
func (o *AdaBelief[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	m, err := ensureState(o.m, grad)
	if err != nil {
		return nil, err
	}
	s, err := ensureState(o.s, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()
	o.beta1Pow *= o.beta1
	o.beta2Pow *= o.beta2

	o.m = m.MulScalar(T(o.beta1)).Add(grad.MulScalar(T(1 - o.beta1)))

	// Deviation of the gradient around the updated moving average.
	diff := grad.Sub(o.m)
	o.s = s.MulScalar(T(o.beta2)).Add(diff.Square().MulScalar(T(1 - o.beta2))).AddScalar(T(o.eps))

	mHat := o.m.DivScalar(T(1 - o.beta1Pow))
	sHat := o.s.DivScalar(T(1 - o.beta2Pow))

	denom := sHat.Sqrt().AddScalar(T(o.eps))
	return mHat.Div(denom).MulScalar(T(-lr)), nil
}

// Apply returns params + Update(grad).
func (o *AdaBelief[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// AdaGrad implements cumulative squared-gradient normalization.
//
// Update rule:
//
//	g_acc = g_acc + gradient²
//	delta = -lr / (epsilon + sqrt(g_acc)) * gradient
//
// The accumulator only grows, so the effective per-coordinate rate shrinks
// monotonically: coordinates with large historical gradients take ever
// smaller steps.
type AdaGrad[T tensor.Float, B tensor.Backend] struct {
	state
	eps  float64
	gAcc *tensor.Tensor[T, B]
}

// AdaGradConfig holds configuration for the AdaGrad optimizer.
type AdaGradConfig struct {
	LR  Rate    // Learning rate (nil: Fixed(1e-3))
	Eps float64 // Division guard (0: 1e-8)
}

// DefaultAdaGradConfig returns the published defaults.
func DefaultAdaGradConfig() AdaGradConfig {
	return AdaGradConfig{LR: Fixed(DefaultLR), Eps: 1e-8}
}

// NewAdaGrad creates a new AdaGrad optimizer.
func NewAdaGrad[T tensor.Float, B tensor.Backend](config AdaGradConfig) (*AdaGrad[T, B], error) {
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	if err := validateEpsilon(config.Eps); err != nil {
		return nil, err
	}
	return &AdaGrad[T, B]{
		state: newState(config.LR),
		eps:   config.Eps,
	}, nil
}

// MustNewAdaGrad is NewAdaGrad panicking on invalid configuration.
func MustNewAdaGrad[T tensor.Float, B tensor.Backend](config AdaGradConfig) *AdaGrad[T, B] {
	opt, err := NewAdaGrad[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update accumulates the squared gradient and returns the scaled delta.
func (o *AdaGrad[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	gAcc, err := ensureState(o.gAcc, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()

	o.gAcc = gAcc.Add(grad.Square())
	denom := o.gAcc.Sqrt().AddScalar(T(o.eps))
	return grad.Div(denom).MulScalar(T(-lr)), nil
}

// Apply returns params + Update(grad).
func (o *AdaGrad[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

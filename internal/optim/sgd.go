package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	delta = -lr * gradient
//
// SGD keeps no per-coordinate state; its only state is the step counter,
// which matters when the learning rate is a Schedule.
type SGD[T tensor.Float, B tensor.Backend] struct {
	state
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR Rate // Learning rate (nil: Fixed(1e-3))
}

// DefaultSGDConfig returns the published defaults.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{LR: Fixed(DefaultLR)}
}

// NewSGD creates a new SGD optimizer.
func NewSGD[T tensor.Float, B tensor.Backend](config SGDConfig) (*SGD[T, B], error) {
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	return &SGD[T, B]{state: newState(config.LR)}, nil
}

// MustNewSGD is NewSGD panicking on invalid configuration.
func MustNewSGD[T tensor.Float, B tensor.Backend](config SGDConfig) *SGD[T, B] {
	opt, err := NewSGD[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update returns -lr * grad and advances the step counter.
func (o *SGD[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	lr := o.advance()

	return grad.MulScalar(T(-lr)), nil
}

// Apply returns params + Update(grad).
func (o *SGD[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// MomentumSGD implements SGD with an exponentially-decayed velocity
// accumulator.
//
// Update rule:
//
//	velocity = momentum * velocity - lr * gradient
//	delta    = velocity
//
// The velocity is an exponentially-weighted moving sum of past scaled
// gradients; with momentum = 0 every call reduces exactly to SGD.
type MomentumSGD[T tensor.Float, B tensor.Backend] struct {
	state
	momentum float64
	velocity *tensor.Tensor[T, B]
}

// MomentumSGDConfig holds configuration for the MomentumSGD optimizer.
type MomentumSGDConfig struct {
	LR       Rate    // Learning rate (nil: Fixed(1e-3))
	Momentum float64 // Velocity decay factor, range [0, 1)
}

// DefaultMomentumSGDConfig returns the published defaults.
func DefaultMomentumSGDConfig() MomentumSGDConfig {
	return MomentumSGDConfig{LR: Fixed(DefaultLR), Momentum: 0.9}
}

// NewMomentumSGD creates a new MomentumSGD optimizer.
func NewMomentumSGD[T tensor.Float, B tensor.Backend](config MomentumSGDConfig) (*MomentumSGD[T, B], error) {
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	if err := validateUnitInterval("momentum", config.Momentum); err != nil {
		return nil, err
	}
	return &MomentumSGD[T, B]{
		state:    newState(config.LR),
		momentum: config.Momentum,
	}, nil
}

// MustNewMomentumSGD is NewMomentumSGD panicking on invalid configuration.
func MustNewMomentumSGD[T tensor.Float, B tensor.Backend](config MomentumSGDConfig) *MomentumSGD[T, B] {
	opt, err := NewMomentumSGD[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update advances the velocity recurrence and returns the new velocity.
func (o *MomentumSGD[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	vel, err := ensureState(o.velocity, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()

	o.velocity = vel.MulScalar(T(o.momentum)).Sub(grad.MulScalar(T(lr)))
	return o.velocity.Clone(), nil
}

// Apply returns params + Update(grad).
func (o *MomentumSGD[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

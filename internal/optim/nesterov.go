package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// NesterovSGD implements the lookahead variant of momentum SGD.
//
// The velocity recurrence is identical to MomentumSGD:
//
//	velocity = momentum * velocity - lr * gradient
//
// but the returned delta applies one more momentum-scaled velocity term
// plus the freshly scaled gradient:
//
//	delta = momentum * velocity - lr * gradient
//
// approximating a step taken from the looked-ahead position.
type NesterovSGD[T tensor.Float, B tensor.Backend] struct {
	state
	momentum float64
	velocity *tensor.Tensor[T, B]
}

// NesterovSGDConfig holds configuration for the NesterovSGD optimizer.
type NesterovSGDConfig struct {
	LR       Rate    // Learning rate (nil: Fixed(1e-3))
	Momentum float64 // Velocity decay factor, range [0, 1)
}

// DefaultNesterovSGDConfig returns the published defaults.
func DefaultNesterovSGDConfig() NesterovSGDConfig {
	return NesterovSGDConfig{LR: Fixed(DefaultLR), Momentum: 0.9}
}

// NewNesterovSGD creates a new NesterovSGD optimizer.
func NewNesterovSGD[T tensor.Float, B tensor.Backend](config NesterovSGDConfig) (*NesterovSGD[T, B], error) {
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	if err := validateUnitInterval("momentum", config.Momentum); err != nil {
		return nil, err
	}
	return &NesterovSGD[T, B]{
		state:    newState(config.LR),
		momentum: config.Momentum,
	}, nil
}

// MustNewNesterovSGD is NewNesterovSGD panicking on invalid configuration.
func MustNewNesterovSGD[T tensor.Float, B tensor.Backend](config NesterovSGDConfig) *NesterovSGD[T, B] {
	opt, err := NewNesterovSGD[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update advances the velocity recurrence and returns the lookahead delta.
func (o *NesterovSGD[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	vel, err := ensureState(o.velocity, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()

	scaledGrad := grad.MulScalar(T(lr))
	o.velocity = vel.MulScalar(T(o.momentum)).Sub(scaledGrad)
	return o.velocity.MulScalar(T(o.momentum)).Sub(scaledGrad), nil
}

// Apply returns params + Update(grad).
func (o *NesterovSGD[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

package optim

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// RMSProp implements exponentially-decayed squared-gradient normalization.
//
// Update rule:
//
//	g_acc = rho * g_acc + (1 - rho) * gradient²
//	delta = -lr / (epsilon + sqrt(g_acc)) * gradient
//
// Unlike AdaGrad's unbounded sum, the decayed average keeps the
// per-coordinate rate from vanishing over long runs.
type RMSProp[T tensor.Float, B tensor.Backend] struct {
	state
	rho  float64
	eps  float64
	gAcc *tensor.Tensor[T, B]
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR  Rate    // Learning rate (nil: Fixed(1e-3))
	Rho float64 // Accumulator decay factor, range [0, 1)
	Eps float64 // Division guard (0: 1e-8)
}

// DefaultRMSPropConfig returns the published defaults.
func DefaultRMSPropConfig() RMSPropConfig {
	return RMSPropConfig{LR: Fixed(DefaultLR), Rho: 0.9, Eps: 1e-8}
}

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp[T tensor.Float, B tensor.Backend](config RMSPropConfig) (*RMSProp[T, B], error) {
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if err := validateRate(config.LR); err != nil {
		return nil, err
	}
	if err := validateUnitInterval("rho", config.Rho); err != nil {
		return nil, err
	}
	if err := validateEpsilon(config.Eps); err != nil {
		return nil, err
	}
	return &RMSProp[T, B]{
		state: newState(config.LR),
		rho:   config.Rho,
		eps:   config.Eps,
	}, nil
}

// MustNewRMSProp is NewRMSProp panicking on invalid configuration.
func MustNewRMSProp[T tensor.Float, B tensor.Backend](config RMSPropConfig) *RMSProp[T, B] {
	opt, err := NewRMSProp[T, B](config)
	if err != nil {
		panic(err)
	}
	return opt
}

// Update decays the squared-gradient average and returns the scaled delta.
func (o *RMSProp[T, B]) Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	gAcc, err := ensureState(o.gAcc, grad)
	if err != nil {
		return nil, err
	}
	lr := o.advance()

	o.gAcc = gAcc.MulScalar(T(o.rho)).Add(grad.Square().MulScalar(T(1 - o.rho)))
	denom := o.gAcc.Sqrt().AddScalar(T(o.eps))
	return grad.Div(denom).MulScalar(T(-lr)), nil
}

// Apply returns params + Update(grad).
func (o *RMSProp[T, B]) Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	return applyDelta[T, B](o, params, grad)
}

// Package optim implements first-order parameter-update rules.
//
// This package provides:
//   - Optimizer interface: the contract shared by every update rule
//   - SGD, MomentumSGD, NesterovSGD: gradient descent and momentum variants
//   - AdaGrad, RMSProp: per-coordinate adaptive scaling
//   - Adam, AdaBelief: bias-corrected moment estimation
//
// Each optimizer owns its accumulators and a monotonic step counter; the
// caller owns parameters and gradients. An optimizer instance must be
// driven by a single goroutine (or serialized externally) — typically one
// instance per parameter group.
//
// Example usage:
//
//	backend := cpu.New()
//	opt := optim.MustNewAdam[float64, *cpu.CPUBackend](optim.DefaultAdamConfig())
//
//	for i := 0; i < steps; i++ {
//	    grad := computeGradient(params)
//	    params, err = opt.Apply(params, grad)
//	    if err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// DefaultLR is the learning rate used when a config leaves the rate unset.
const DefaultLR = 1e-3

// Optimizer is the contract shared by every update rule.
//
// All optimizers advance an internal step counter by exactly one per
// Update (Apply calls Update). The counter starts at 0 and is never reset.
type Optimizer[T tensor.Float, B tensor.Backend] interface {
	// Update consumes the current gradient and returns the delta to add
	// to the parameters. The gradient is read, never written; the
	// returned tensor never aliases optimizer state.
	Update(grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)

	// Apply returns parameters + Update(gradient). Parameters are read,
	// never written.
	Apply(params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error)

	// GetLR returns the learning rate the next Update call will use.
	GetLR() float64

	// GetTimestep returns the number of Update calls made so far.
	GetTimestep() int
}

// state carries what every update rule shares: the monotonic step counter
// and the learning-rate choice.
type state struct {
	rate Rate
	step int
}

func newState(rate Rate) state {
	if rate == nil {
		rate = Fixed(DefaultLR)
	}
	return state{rate: rate}
}

// advance resolves the effective learning rate at the current step, then
// increments the counter. Schedules see the pre-increment step.
func (s *state) advance() float64 {
	lr := s.rate.value(s.step)
	s.step++
	return lr
}

// GetLR returns the learning rate at the current step, without side effects.
func (s *state) GetLR() float64 {
	return s.rate.value(s.step)
}

// GetTimestep returns the current step count.
func (s *state) GetTimestep() int {
	return s.step
}

// checkGradient rejects absent gradients before any arithmetic runs.
func checkGradient[T tensor.Float, B tensor.Backend](grad *tensor.Tensor[T, B]) error {
	if grad == nil {
		return errors.WithStack(ErrNilGradient)
	}
	return nil
}

// ensureState returns the accumulator to use for this call. Accumulators
// start out nil and are allocated as zero tensors shaped like the first
// gradient seen; a gradient whose shape disagrees with an existing
// accumulator fails before any arithmetic runs.
func ensureState[T tensor.Float, B tensor.Backend](acc, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if acc == nil {
		return tensor.Zeros[T, B](grad.Shape(), grad.Backend()), nil
	}
	if !acc.Shape().Equal(grad.Shape()) {
		return nil, errors.WithStack(&ShapeMismatchError{Expected: acc.Shape(), Got: grad.Shape()})
	}
	return acc, nil
}

// applyDelta implements the composition rule parameters + update(gradient).
func applyDelta[T tensor.Float, B tensor.Backend](o Optimizer[T, B], params, grad *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	if params == nil {
		return nil, errors.WithStack(&InvalidArgumentError{Name: "params", Message: "must not be nil"})
	}
	if err := checkGradient(grad); err != nil {
		return nil, err
	}
	if !params.Shape().Equal(grad.Shape()) {
		return nil, errors.WithStack(&ShapeMismatchError{Expected: params.Shape(), Got: grad.Shape()})
	}

	delta, err := o.Update(grad)
	if err != nil {
		return nil, err
	}
	return params.Add(delta), nil
}

package optim

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/descent-ml/descent/internal/tensor"
)

// ErrNilGradient reports an update requested without a gradient.
var ErrNilGradient = errors.New("optim: gradient is nil")

// ShapeMismatchError reports tensors of incompatible shapes: parameters vs
// gradient, or a gradient vs an accumulator allocated for an earlier shape.
type ShapeMismatchError struct {
	Expected tensor.Shape
	Got      tensor.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("optim: shape mismatch: expected %v, got %v", e.Expected, e.Got)
}

// InvalidArgumentError reports a hyperparameter outside its valid domain.
type InvalidArgumentError struct {
	Name    string
	Value   any
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("optim: invalid argument %s=%v: %s", e.Name, e.Value, e.Message)
}

func validateRate(rate Rate) error {
	if f, ok := rate.(fixedRate); ok && float64(f) < 0 {
		return errors.WithStack(&InvalidArgumentError{
			Name:    "lr",
			Value:   float64(f),
			Message: "outside allowed range [0, Inf)",
		})
	}
	return nil
}

func validateUnitInterval(name string, v float64) error {
	if v < 0 || v >= 1 {
		return errors.WithStack(&InvalidArgumentError{
			Name:    name,
			Value:   v,
			Message: "outside allowed range [0, 1)",
		})
	}
	return nil
}

func validateEpsilon(eps float64) error {
	if eps <= 0 {
		return errors.WithStack(&InvalidArgumentError{
			Name:    "epsilon",
			Value:   eps,
			Message: "must be > 0",
		})
	}
	return nil
}

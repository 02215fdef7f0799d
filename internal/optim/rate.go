package optim

import "math"

// Rate selects the learning rate for an optimization step. It is either a
// Fixed scalar or a Schedule over the step index; the two constructors
// below are the only implementations.
//
// A Rate is resolved once per update, with the step count as it was before
// that update's increment: the first update of an optimizer's life resolves
// at step 0.
type Rate interface {
	value(step int) float64
}

type fixedRate float64

func (r fixedRate) value(int) float64 { return float64(r) }

type scheduleRate func(step int) float64

func (r scheduleRate) value(step int) float64 { return r(step) }

// Fixed returns a constant learning rate.
func Fixed(lr float64) Rate { return fixedRate(lr) }

// Schedule wraps a step→rate function as a learning rate.
func Schedule(fn func(step int) float64) Rate { return scheduleRate(fn) }

// StepDecay multiplies initial by gamma once every `every` steps.
func StepDecay(initial, gamma float64, every int) Rate {
	return Schedule(func(step int) float64 {
		return initial * math.Pow(gamma, float64(step/every))
	})
}

// ExponentialDecay multiplies initial by gamma on every step.
func ExponentialDecay(initial, gamma float64) Rate {
	return Schedule(func(step int) float64 {
		return initial * math.Pow(gamma, float64(step))
	})
}

// InverseTimeDecay yields initial / (step + 1).
func InverseTimeDecay(initial float64) Rate {
	return Schedule(func(step int) float64 {
		return initial / float64(step+1)
	})
}

// CosineAnnealing anneals from initial down to floor over period steps,
// then restarts.
func CosineAnnealing(initial, floor float64, period int) Rate {
	return Schedule(func(step int) float64 {
		r := float64(step%period) / float64(period)
		return floor + 0.5*(initial-floor)*(1+math.Cos(math.Pi*r))
	})
}

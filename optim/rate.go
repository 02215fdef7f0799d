// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/descent-ml/descent/internal/optim"

// Rate selects the learning rate for an optimization step: either a Fixed
// scalar or a Schedule over the step index. Schedules are resolved once
// per update, at the step count before that update's increment.
type Rate = optim.Rate

// Fixed returns a constant learning rate.
func Fixed(lr float64) Rate { return optim.Fixed(lr) }

// Schedule wraps a step→rate function as a learning rate.
//
// Example:
//
//	lr := optim.Schedule(func(step int) float64 {
//	    return 0.1 / float64(step+1)
//	})
func Schedule(fn func(step int) float64) Rate { return optim.Schedule(fn) }

// StepDecay multiplies initial by gamma once every `every` steps.
func StepDecay(initial, gamma float64, every int) Rate {
	return optim.StepDecay(initial, gamma, every)
}

// ExponentialDecay multiplies initial by gamma on every step.
func ExponentialDecay(initial, gamma float64) Rate {
	return optim.ExponentialDecay(initial, gamma)
}

// InverseTimeDecay yields initial / (step + 1).
func InverseTimeDecay(initial float64) Rate {
	return optim.InverseTimeDecay(initial)
}

// CosineAnnealing anneals from initial down to floor over period steps,
// then restarts.
func CosineAnnealing(initial, floor float64, period int) Rate {
	return optim.CosineAnnealing(initial, floor, period)
}

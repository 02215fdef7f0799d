// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimization algorithms.
//
// # Overview
//
// This package contains:
//   - SGD, MomentumSGD, NesterovSGD: gradient descent and momentum variants
//   - AdaGrad, RMSProp: per-coordinate adaptive scaling
//   - Adam, AdaBelief: bias-corrected moment estimation
//   - Fixed and Schedule learning rates with canned decay schedules
//
// Every optimizer implements the same contract: Update maps a gradient to
// a parameter delta, and Apply composes it with the parameters:
//
//	Apply(params, grad) = params + Update(grad)
//
// Optimizers never mutate the tensors they are given. State (velocity,
// moment estimates, squared-gradient accumulators) lives inside the
// optimizer and is allocated lazily, shaped like the first gradient seen.
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/optim"
//	    "github.com/descent-ml/descent/backend/cpu"
//	    "github.com/descent-ml/descent/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    opt := optim.MustNewAdam[float32, *cpu.Backend](optim.DefaultAdamConfig())
//
//	    params, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//
//	    for step := 0; step < 100; step++ {
//	        grad := computeGradient(params)
//	        var err error
//	        params, err = opt.Apply(params, grad)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Learning Rate Schedules
//
// Every config takes a Rate. Fixed rates never change; schedules are
// functions of the step count:
//
//	optim.SGDConfig{LR: optim.Fixed(0.01)}
//	optim.SGDConfig{LR: optim.InverseTimeDecay(0.1)}
//	optim.SGDConfig{LR: optim.Schedule(func(step int) float64 {
//	    return 0.1 * math.Pow(0.95, float64(step))
//	})}
//
// # Concurrency
//
// An optimizer instance must be driven by a single goroutine or serialized
// externally. Distinct instances are fully independent.
package optim

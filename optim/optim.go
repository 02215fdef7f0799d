// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/descent-ml/descent/internal/optim"
	"github.com/descent-ml/descent/internal/tensor"
)

// DefaultLR is the learning rate used when a config leaves the rate unset.
const DefaultLR = optim.DefaultLR

// Optimizer is the contract shared by every update rule: Update maps a
// gradient to a parameter delta, Apply composes it with the parameters,
// and GetLR/GetTimestep expose the schedule state.
type Optimizer[T tensor.Float, B tensor.Backend] = optim.Optimizer[T, B]

// SGD (Stochastic Gradient Descent)

// SGD is plain gradient descent: delta = -lr * gradient.
type SGD[T tensor.Float, B tensor.Backend] = optim.SGD[T, B]

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultSGDConfig returns the published SGD defaults.
func DefaultSGDConfig() SGDConfig { return optim.DefaultSGDConfig() }

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	opt, err := optim.NewSGD[float32, *cpu.Backend](optim.SGDConfig{
//	    LR: optim.Fixed(0.01),
//	})
func NewSGD[T tensor.Float, B tensor.Backend](config SGDConfig) (*SGD[T, B], error) {
	return optim.NewSGD[T, B](config)
}

// MustNewSGD is NewSGD panicking on invalid configuration.
func MustNewSGD[T tensor.Float, B tensor.Backend](config SGDConfig) *SGD[T, B] {
	return optim.MustNewSGD[T, B](config)
}

// MomentumSGD

// MomentumSGD is SGD with an exponentially-decayed velocity accumulator.
type MomentumSGD[T tensor.Float, B tensor.Backend] = optim.MomentumSGD[T, B]

// MomentumSGDConfig contains configuration for the MomentumSGD optimizer.
type MomentumSGDConfig = optim.MomentumSGDConfig

// DefaultMomentumSGDConfig returns the published MomentumSGD defaults.
func DefaultMomentumSGDConfig() MomentumSGDConfig { return optim.DefaultMomentumSGDConfig() }

// NewMomentumSGD creates a new MomentumSGD optimizer.
func NewMomentumSGD[T tensor.Float, B tensor.Backend](config MomentumSGDConfig) (*MomentumSGD[T, B], error) {
	return optim.NewMomentumSGD[T, B](config)
}

// MustNewMomentumSGD is NewMomentumSGD panicking on invalid configuration.
func MustNewMomentumSGD[T tensor.Float, B tensor.Backend](config MomentumSGDConfig) *MomentumSGD[T, B] {
	return optim.MustNewMomentumSGD[T, B](config)
}

// NesterovSGD

// NesterovSGD is momentum SGD with a lookahead correction on the
// returned delta.
type NesterovSGD[T tensor.Float, B tensor.Backend] = optim.NesterovSGD[T, B]

// NesterovSGDConfig contains configuration for the NesterovSGD optimizer.
type NesterovSGDConfig = optim.NesterovSGDConfig

// DefaultNesterovSGDConfig returns the published NesterovSGD defaults.
func DefaultNesterovSGDConfig() NesterovSGDConfig { return optim.DefaultNesterovSGDConfig() }

// NewNesterovSGD creates a new NesterovSGD optimizer.
func NewNesterovSGD[T tensor.Float, B tensor.Backend](config NesterovSGDConfig) (*NesterovSGD[T, B], error) {
	return optim.NewNesterovSGD[T, B](config)
}

// MustNewNesterovSGD is NewNesterovSGD panicking on invalid configuration.
func MustNewNesterovSGD[T tensor.Float, B tensor.Backend](config NesterovSGDConfig) *NesterovSGD[T, B] {
	return optim.MustNewNesterovSGD[T, B](config)
}

// AdaGrad

// AdaGrad scales each coordinate by the inverse root of its cumulative
// squared gradient.
type AdaGrad[T tensor.Float, B tensor.Backend] = optim.AdaGrad[T, B]

// AdaGradConfig contains configuration for the AdaGrad optimizer.
type AdaGradConfig = optim.AdaGradConfig

// DefaultAdaGradConfig returns the published AdaGrad defaults.
func DefaultAdaGradConfig() AdaGradConfig { return optim.DefaultAdaGradConfig() }

// NewAdaGrad creates a new AdaGrad optimizer.
func NewAdaGrad[T tensor.Float, B tensor.Backend](config AdaGradConfig) (*AdaGrad[T, B], error) {
	return optim.NewAdaGrad[T, B](config)
}

// MustNewAdaGrad is NewAdaGrad panicking on invalid configuration.
func MustNewAdaGrad[T tensor.Float, B tensor.Backend](config AdaGradConfig) *AdaGrad[T, B] {
	return optim.MustNewAdaGrad[T, B](config)
}

// RMSProp

// RMSProp scales each coordinate by the inverse root of an exponentially
// decayed squared-gradient average.
type RMSProp[T tensor.Float, B tensor.Backend] = optim.RMSProp[T, B]

// RMSPropConfig contains configuration for the RMSProp optimizer.
type RMSPropConfig = optim.RMSPropConfig

// DefaultRMSPropConfig returns the published RMSProp defaults.
func DefaultRMSPropConfig() RMSPropConfig { return optim.DefaultRMSPropConfig() }

// NewRMSProp creates a new RMSProp optimizer.
func NewRMSProp[T tensor.Float, B tensor.Backend](config RMSPropConfig) (*RMSProp[T, B], error) {
	return optim.NewRMSProp[T, B](config)
}

// MustNewRMSProp is NewRMSProp panicking on invalid configuration.
func MustNewRMSProp[T tensor.Float, B tensor.Backend](config RMSPropConfig) *RMSProp[T, B] {
	return optim.MustNewRMSProp[T, B](config)
}

// Adam (Adaptive Moment Estimation)

// Adam combines momentum with per-coordinate scaling, both bias-corrected.
type Adam[T tensor.Float, B tensor.Backend] = optim.Adam[T, B]

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// DefaultAdamConfig returns the published Adam defaults.
func DefaultAdamConfig() AdamConfig { return optim.DefaultAdamConfig() }

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	opt, err := optim.NewAdam[float32, *cpu.Backend](optim.AdamConfig{
//	    LR:    optim.Fixed(0.001),
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam[T tensor.Float, B tensor.Backend](config AdamConfig) (*Adam[T, B], error) {
	return optim.NewAdam[T, B](config)
}

// MustNewAdam is NewAdam panicking on invalid configuration.
func MustNewAdam[T tensor.Float, B tensor.Backend](config AdamConfig) *Adam[T, B] {
	return optim.MustNewAdam[T, B](config)
}

// AdaBelief

// AdaBelief is Adam with the second moment tracking the deviation of the
// gradient from its moving average instead of the raw square.
type AdaBelief[T tensor.Float, B tensor.Backend] = optim.AdaBelief[T, B]

// AdaBeliefConfig contains configuration for the AdaBelief optimizer.
type AdaBeliefConfig = optim.AdaBeliefConfig

// DefaultAdaBeliefConfig returns the published AdaBelief defaults.
func DefaultAdaBeliefConfig() AdaBeliefConfig { return optim.DefaultAdaBeliefConfig() }

// NewAdaBelief creates a new AdaBelief optimizer.
func NewAdaBelief[T tensor.Float, B tensor.Backend](config AdaBeliefConfig) (*AdaBelief[T, B], error) {
	return optim.NewAdaBelief[T, B](config)
}

// MustNewAdaBelief is NewAdaBelief panicking on invalid configuration.
func MustNewAdaBelief[T tensor.Float, B tensor.Backend](config AdaBeliefConfig) *AdaBelief[T, B] {
	return optim.MustNewAdaBelief[T, B](config)
}

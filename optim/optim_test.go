// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/descent-ml/descent/backend/cpu"
	"github.com/descent-ml/descent/optim"
	"github.com/descent-ml/descent/tensor"
)

// TestOptimizerInterface verifies all variants satisfy the Optimizer contract.
func TestOptimizerInterface(_ *testing.T) {
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.SGD[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.MomentumSGD[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.NesterovSGD[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.AdaGrad[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.RMSProp[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.Adam[float32, *cpu.Backend])(nil)
	var _ optim.Optimizer[float32, *cpu.Backend] = (*optim.AdaBelief[float32, *cpu.Backend])(nil)
}

// TestFacadeRoundTrip drives an SGD step through the public API only.
func TestFacadeRoundTrip(t *testing.T) {
	backend := cpu.New()

	params, err := tensor.FromSlice([]float64{1.0}, tensor.Shape{1}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	grad, err := tensor.FromSlice([]float64{2.0}, tensor.Shape{1}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	opt, err := optim.NewSGD[float64, *cpu.Backend](optim.SGDConfig{LR: optim.Fixed(0.1)})
	if err != nil {
		t.Fatalf("NewSGD failed: %v", err)
	}

	updated, err := opt.Apply(params, grad)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := updated.Item(); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("Apply() = %v, want 0.8", got)
	}
	if opt.GetTimestep() != 1 {
		t.Errorf("GetTimestep() = %d, want 1", opt.GetTimestep())
	}
}

// TestErrorsExported verifies the error types survive the facade.
func TestErrorsExported(t *testing.T) {
	opt := optim.MustNewAdam[float64, *cpu.Backend](optim.DefaultAdamConfig())

	_, err := opt.Update(nil)
	if !errors.Is(err, optim.ErrNilGradient) {
		t.Errorf("Update(nil) = %v, want ErrNilGradient", err)
	}

	backend := cpu.New()
	params := tensor.Zeros[float64](tensor.Shape{2}, backend)
	grad := tensor.Zeros[float64](tensor.Shape{3}, backend)

	_, err = opt.Apply(params, grad)
	var shapeErr *optim.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Errorf("Apply() = %v, want ShapeMismatchError", err)
	}

	_, err = optim.NewRMSProp[float64, *cpu.Backend](optim.RMSPropConfig{Rho: 2})
	var argErr *optim.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("NewRMSProp() = %v, want InvalidArgumentError", err)
	}
}

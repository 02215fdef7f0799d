// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/descent-ml/descent/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Every operation returns a freshly allocated result; operands are read,
// never written. Backends panic on misuse (dtype mismatch, incompatible
// shapes) rather than returning errors — shape and type checking belongs
// to the layers above.
//
// Implementations:
//   - backend/cpu: pure Go with gonum-accelerated float64 kernels
//
// Example:
//
//	import (
//	    "github.com/descent-ml/descent/tensor"
//	    "github.com/descent-ml/descent/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend

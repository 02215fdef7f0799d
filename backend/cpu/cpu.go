// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/tensor"
)

// Backend represents the CPU backend implementation.
//
// Element-wise float64 kernels route through gonum; other dtypes use plain
// Go loops, chunked across goroutines for large tensors.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/descent-ml/descent/backend/cpu"
//	    "github.com/descent-ml/descent/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

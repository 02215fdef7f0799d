// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor operations.
//
// # Overview
//
// This package implements a synchronous CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum-accelerated float64 kernels
//   - Float32, Float64, Int32 and Int64 support
//   - NumPy-compatible broadcasting
//   - Chunked multi-goroutine execution for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/backend/cpu"
//	    "github.com/descent-ml/descent/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
package cpu

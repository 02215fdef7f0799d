// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in Descent.
//
// The package defines core types for type-safe tensor arithmetic:
//   - Tensor[T, B]: high-level generic tensor with compile-time type safety
//   - RawTensor: low-level tensor representation used by backends
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package tensor

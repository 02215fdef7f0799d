// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/descent-ml/descent/internal/tensor"

// RawTensor is the low-level tensor representation: a flat buffer with
// shape, stride and runtime type information. Backend implementations
// operate on RawTensor; most callers use Tensor instead.
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

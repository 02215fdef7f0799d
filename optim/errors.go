// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/descent-ml/descent/internal/optim"

// ErrNilGradient reports an update requested without a gradient.
// Test with errors.Is.
var ErrNilGradient = optim.ErrNilGradient

// ShapeMismatchError reports tensors of incompatible shapes: parameters vs
// gradient, or a gradient vs an accumulator allocated for an earlier shape.
// Test with errors.As.
type ShapeMismatchError = optim.ShapeMismatchError

// InvalidArgumentError reports a hyperparameter outside its valid domain.
// Test with errors.As.
type InvalidArgumentError = optim.InvalidArgumentError

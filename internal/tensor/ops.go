package tensor

// Typed wrappers for backend operations.

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
//
// Example:
//
//	y := x.MulScalar(2.5) // multiply all elements by 2.5
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// AddScalar adds a scalar value to each element of the tensor.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.SubScalar(t.raw, scalar), t.backend)
}

// DivScalar divides each element of the tensor by a scalar value.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, scalar), t.backend)
}

// Sqrt computes the square root of each element.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	return New[T, B](t.backend.Sqrt(t.raw), t.backend)
}

// Square computes the element-wise square (x * x).
func (t *Tensor[T, B]) Square() *Tensor[T, B] {
	return New[T, B](t.backend.Square(t.raw), t.backend)
}

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The surface is the element-wise algebra the optimizer update rules are
// built from; anything larger (matrix products, reductions) belongs in a
// dedicated backend extension, not here.
//
// Backends must return freshly allocated result tensors: operands are
// read-only. Invalid operands (dtype mismatch, incompatible broadcast
// shapes, unsupported dtype) panic — shape agreement is the caller's
// contract, checked by the optim layer before arithmetic starts.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise).
	Sqrt(x *RawTensor) *RawTensor   // square root, float dtypes only
	Square(x *RawTensor) *RawTensor // x * x

	// Metadata
	Name() string
	Device() Device
}

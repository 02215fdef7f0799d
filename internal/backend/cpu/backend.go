// Package cpu implements the CPU compute backend.
//
// float64 kernels are routed through gonum; the remaining dtypes use plain
// Go loops, chunked across goroutines for large tensors. All goroutines
// join before an operation returns, so the backend is synchronous from the
// caller's point of view.
package cpu

import (
	"fmt"

	"github.com/descent-ml/descent/internal/parallel"
	"github.com/descent-ml/descent/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("add", opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("sub", opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("mul", opMul, a, b)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("div", opDiv, a, b)
}

// elementwise allocates the result tensor and dispatches to the dtype
// kernels. Operands are never written.
func (cpu *CPUBackend) elementwise(name string, op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			binBroadcast(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
		} else {
			binVectorized(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cpu.par)
		}
	case tensor.Float64:
		if needsBroadcast {
			binBroadcast(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
		} else {
			binVectorizedFloat64(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
	case tensor.Int32:
		if needsBroadcast {
			binBroadcast(op, result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape)
		} else {
			binVectorized(op, result.AsInt32(), a.AsInt32(), b.AsInt32(), cpu.par)
		}
	case tensor.Int64:
		if needsBroadcast {
			binBroadcast(op, result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape)
		} else {
			binVectorized(op, result.AsInt64(), a.AsInt64(), b.AsInt64(), cpu.par)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

package cpu

import (
	"fmt"

	"github.com/descent-ml/descent/internal/parallel"
	"github.com/descent-ml/descent/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", opMul, x, scalar)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", opAdd, x, scalar)
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", opSub, x, scalar)
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", opDiv, x, scalar)
}

func (cpu *CPUBackend) scalarOp(name string, op binOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		scalarKernel(op, result.AsFloat32(), x.AsFloat32(), toScalar[float32](name, scalar), cpu.par)
	case tensor.Float64:
		scalarKernelFloat64(op, result.AsFloat64(), x.AsFloat64(), toScalar[float64](name, scalar))
	case tensor.Int32:
		scalarKernel(op, result.AsInt32(), x.AsInt32(), toScalar[int32](name, scalar), cpu.par)
	case tensor.Int64:
		scalarKernel(op, result.AsInt64(), x.AsInt64(), toScalar[int64](name, scalar), cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// toScalar asserts the dynamic scalar to the tensor's element type.
func toScalar[T int32 | int64 | float32 | float64](name string, scalar any) T {
	v, ok := scalar.(T)
	if !ok {
		panic(fmt.Sprintf("%s: scalar %v (%T) does not match tensor dtype", name, scalar, scalar))
	}
	return v
}

func scalarKernel[T int32 | int64 | float32 | float64](op binOp, dst, src []T, c T, par parallel.Config) {
	switch op {
	case opAdd:
		parallel.For(len(dst), func(i int) { dst[i] = src[i] + c }, par)
	case opSub:
		parallel.For(len(dst), func(i int) { dst[i] = src[i] - c }, par)
	case opMul:
		parallel.For(len(dst), func(i int) { dst[i] = src[i] * c }, par)
	case opDiv:
		parallel.For(len(dst), func(i int) { dst[i] = src[i] / c }, par)
	default:
		panic("unknown binary op")
	}
}

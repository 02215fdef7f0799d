package cpu

import (
	"fmt"
	"math"

	"github.com/descent-ml/descent/internal/tensor"
)

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sqrt: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(math.Sqrt(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = math.Sqrt(v)
		}
	default:
		panic(fmt.Sprintf("sqrt: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Square computes the element-wise square: x * x.
func (cpu *CPUBackend) Square(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("square", opMul, x, x)
}

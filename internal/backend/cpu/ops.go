package cpu

import (
	"github.com/descent-ml/descent/internal/parallel"
	"github.com/descent-ml/descent/internal/tensor"
)

// binOp selects the element-wise kernel.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// binVectorized computes dst = a <op> b for operands with equal element
// counts. Large slices are chunked across goroutines.
func binVectorized[T int32 | int64 | float32 | float64](op binOp, dst, a, b []T, par parallel.Config) {
	switch op {
	case opAdd:
		parallel.For(len(dst), func(i int) { dst[i] = a[i] + b[i] }, par)
	case opSub:
		parallel.For(len(dst), func(i int) { dst[i] = a[i] - b[i] }, par)
	case opMul:
		parallel.For(len(dst), func(i int) { dst[i] = a[i] * b[i] }, par)
	case opDiv:
		parallel.For(len(dst), func(i int) { dst[i] = a[i] / b[i] }, par)
	default:
		panic("unknown binary op")
	}
}

// binBroadcast computes dst = a <op> b where a and b broadcast to outShape.
func binBroadcast[T int32 | int64 | float32 | float64](op binOp, dst, a, b []T, aShape, bShape, outShape tensor.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		av := a[flatIndex(i, outStrides, aStrides)]
		bv := b[flatIndex(i, outStrides, bStrides)]
		switch op {
		case opAdd:
			dst[i] = av + bv
		case opSub:
			dst[i] = av - bv
		case opMul:
			dst[i] = av * bv
		case opDiv:
			dst[i] = av / bv
		default:
			panic("unknown binary op")
		}
	}
}

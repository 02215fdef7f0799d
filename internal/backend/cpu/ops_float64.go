package cpu

import "gonum.org/v1/gonum/floats"

// Same-shape float64 kernels run through gonum's vectorized routines.

func binVectorizedFloat64(op binOp, dst, a, b []float64) {
	switch op {
	case opAdd:
		floats.AddTo(dst, a, b)
	case opSub:
		floats.SubTo(dst, a, b)
	case opMul:
		floats.MulTo(dst, a, b)
	case opDiv:
		floats.DivTo(dst, a, b)
	default:
		panic("unknown binary op")
	}
}

func scalarKernelFloat64(op binOp, dst, src []float64, c float64) {
	switch op {
	case opAdd:
		copy(dst, src)
		floats.AddConst(c, dst)
	case opSub:
		copy(dst, src)
		floats.AddConst(-c, dst)
	case opMul:
		floats.ScaleTo(dst, c, src)
	case opDiv:
		// No DivConst in gonum; an exact per-element division keeps
		// results bit-identical to the other dtypes.
		for i := range src {
			dst[i] = src[i] / c
		}
	default:
		panic("unknown binary op")
	}
}

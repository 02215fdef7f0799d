package cpu

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (and dimensions padded on the left) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat index in a (possibly
// broadcast) source array.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	idx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		idx += coord * inStrides[i]
	}
	return idx
}

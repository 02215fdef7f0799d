package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	ts, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, ts.Shape())
	assert.Equal(t, tensor.Float32, ts.DType())
	assert.Equal(t, 6, ts.NumElements())
	assert.Equal(t, float32(6), ts.At(1, 2))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 3}, cpu.New())
	assert.Error(t, err)
}

func TestFromSlice_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3}
	ts, err := tensor.FromSlice(data, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, 1.0, ts.At(0))
}

func TestZerosOnesFull(t *testing.T) {
	backend := cpu.New()

	z := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
	assert.Equal(t, []float32{0, 0, 0, 0}, z.Data())

	o := tensor.Ones[float64](tensor.Shape{3}, backend)
	assert.Equal(t, []float64{1, 1, 1}, o.Data())

	f := tensor.Full[int32](tensor.Shape{2}, 7, backend)
	assert.Equal(t, []int32{7, 7}, f.Data())
}

func TestAtSetItem(t *testing.T) {
	ts := tensor.Zeros[float64](tensor.Shape{2, 3}, cpu.New())

	ts.Set(3.5, 1, 2)
	assert.Equal(t, 3.5, ts.At(1, 2))
	assert.Equal(t, 0.0, ts.At(0, 0))

	single := tensor.Full[float64](tensor.Shape{1}, 42, cpu.New())
	assert.Equal(t, 42.0, single.Item())

	assert.Panics(t, func() { ts.Item() })
	assert.Panics(t, func() { ts.At(5, 0) })
	assert.Panics(t, func() { ts.At(0) })
}

func TestClone_Independent(t *testing.T) {
	orig := tensor.Ones[float32](tensor.Shape{4}, cpu.New())
	clone := orig.Clone()

	clone.Set(9, 0)
	assert.Equal(t, float32(1), orig.At(0))
	assert.Equal(t, float32(9), clone.At(0))
}

func TestOps(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{4, 3, 2, 1}, tensor.Shape{4}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 5, 5, 5}, a.Add(b).Data())
	assert.Equal(t, []float64{-3, -1, 1, 3}, a.Sub(b).Data())
	assert.Equal(t, []float64{4, 6, 6, 4}, a.Mul(b).Data())
	assert.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, a.Div(b).Data())

	// Operands stay untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{4, 3, 2, 1}, b.Data())
}

func TestOps_Broadcast(t *testing.T) {
	backend := cpu.New()
	matrix, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	row, err := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	sum := matrix.Add(row)
	assert.Equal(t, tensor.Shape{2, 3}, sum.Shape())
	assert.Equal(t, []float32{11, 22, 33, 14, 25, 36}, sum.Data())
}

func TestScalarOps(t *testing.T) {
	ts, err := tensor.FromSlice([]float64{1, 2, 4}, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 8}, ts.MulScalar(2).Data())
	assert.Equal(t, []float64{2, 3, 5}, ts.AddScalar(1).Data())
	assert.Equal(t, []float64{0, 1, 3}, ts.SubScalar(1).Data())
	assert.Equal(t, []float64{0.5, 1, 2}, ts.DivScalar(2).Data())
}

func TestSqrtSquare(t *testing.T) {
	ts, err := tensor.FromSlice([]float64{1, 4, 9}, tensor.Shape{3}, cpu.New())
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, ts.Sqrt().Data())
	assert.Equal(t, []float64{1, 16, 81}, ts.Square().Data())
}

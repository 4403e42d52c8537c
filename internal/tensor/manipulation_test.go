package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numtasks/internal/backend/cpu"
	"github.com/born-ml/numtasks/internal/tensor"
)

func TestReshape(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[int64](0, 12, backend)

	y := x.Reshape(3, 4)
	assert.True(t, y.Shape().Equal(tensor.Shape{3, 4}))
	assert.Equal(t, int64(6), y.At(1, 2))

	z := x.Reshape(-1, 6)
	assert.True(t, z.Shape().Equal(tensor.Shape{2, 6}))

	assert.Panics(t, func() { x.Reshape(5, -1) })
	assert.Panics(t, func() { x.Reshape(-1, -1) })
}

// TestReshape_CopyOnWrite verifies a reshape view detaches on first write.
func TestReshape_CopyOnWrite(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[int64](0, 6, backend)
	y := x.Reshape(2, 3)
	require.True(t, tensor.SharesMemory(x, y))

	y.Set(100, 0, 0)
	assert.Equal(t, int64(0), x.At(0))
	assert.Equal(t, int64(100), y.At(0, 0))
	assert.False(t, tensor.SharesMemory(x, y))
}

func TestFlatten(t *testing.T) {
	backend := cpu.New()
	m, err := tensor.FromRows([][]int64{{10, 20, 30}, {20, 40, 50}}, backend)
	require.NoError(t, err)

	flat := m.Flatten()
	assert.True(t, flat.Shape().Equal(tensor.Shape{6}))
	assert.Equal(t, []int64{10, 20, 30, 20, 40, 50}, flat.Data())
	assert.False(t, tensor.SharesMemory(m, flat))
	assert.False(t, flat.Memory().Shared)
}

func TestTransposeFlip(t *testing.T) {
	backend := cpu.New()
	m, err := tensor.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}}, backend)
	require.NoError(t, err)

	tr := m.Transpose()
	assert.True(t, tr.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, tr.Data())

	assert.Equal(t, []int64{37, 36, 35}, tensor.Arange[int64](35, 38, backend).Flip(0).Data())
}

func TestCatStackAppend(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromRows([][]int64{{0, 1, 3}, {5, 7, 9}}, backend)
	require.NoError(t, err)
	b, err := tensor.FromRows([][]int64{{0, 2, 4}, {6, 8, 10}}, backend)
	require.NoError(t, err)

	joined := tensor.Cat([]*tensor.Tensor[int64, *cpu.CPUBackend]{a, b}, 1)
	assert.Equal(t, "[[ 0  1  3  0  2  4]\n [ 5  7  9  6  8 10]]", joined.String())

	single := tensor.Cat([]*tensor.Tensor[int64, *cpu.CPUBackend]{a}, 0)
	assert.Equal(t, a.Data(), single.Data())
	assert.False(t, tensor.SharesMemory(a, single))

	x := tensor.Vector([]int64{1, 2, 3}, backend)
	y := tensor.Vector([]int64{4, 5, 6}, backend)
	stacked := tensor.Stack([]*tensor.Tensor[int64, *cpu.CPUBackend]{x, y}, 0)
	assert.Equal(t, "[[1 2 3]\n [4 5 6]]", stacked.String())

	columns := tensor.Stack([]*tensor.Tensor[int64, *cpu.CPUBackend]{x, y}, -1)
	assert.True(t, columns.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, columns.Data())

	assert.Panics(t, func() {
		tensor.Stack([]*tensor.Tensor[int64, *cpu.CPUBackend]{x, a}, 0)
	})

	appended := tensor.Append(tensor.Vector([]int64{10, 20, 30}, backend), a)
	assert.Equal(t, []int64{10, 20, 30, 0, 1, 3, 5, 7, 9}, appended.Data())
}

func TestChunkSqueeze(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[float64](0, 6, backend)

	parts := x.Chunk(3, 0)
	require.Len(t, parts, 3)
	assert.Equal(t, []float64{4, 5}, parts[2].Data())

	u := x.Unsqueeze(0)
	assert.True(t, u.Shape().Equal(tensor.Shape{1, 6}))
	assert.True(t, u.Squeeze(0).Shape().Equal(tensor.Shape{6}))
}

func TestPad(t *testing.T) {
	backend := cpu.New()

	border := tensor.Ones[float64](tensor.Shape{3, 3}, backend).Pad([][2]int{{1, 1}}, tensor.PadOptions{})
	want := "[[0. 0. 0. 0. 0.]\n [0. 1. 1. 1. 0.]\n [0. 1. 1. 1. 0.]\n [0. 1. 1. 1. 0.]\n [0. 0. 0. 0. 0.]]"
	assert.Equal(t, want, border.String())

	edge := tensor.Vector([]int64{1, 2}, backend).Pad([][2]int{{1, 2}}, tensor.PadOptions{Mode: tensor.PadEdge})
	assert.Equal(t, []int64{1, 1, 2, 2, 2}, edge.Data())
}

func TestArithmetic(t *testing.T) {
	backend := cpu.New()
	x := tensor.Vector([]float64{1, 2, 3}, backend)
	y := tensor.Vector([]float64{4, 5, 6}, backend)

	assert.Equal(t, []float64{5, 7, 9}, x.Add(y).Data())
	assert.Equal(t, []float64{3, 3, 3}, y.Sub(x).Data())
	assert.Equal(t, []float64{4, 10, 18}, x.Mul(y).Data())
	assert.Equal(t, []float64{4, 2.5, 2}, y.Div(x).Data())
	assert.Equal(t, []float64{11, 12, 13}, x.AddScalar(10).Data())
	assert.Equal(t, []float64{2, 4, 6}, x.MulScalar(2).Data())

	checker := tensor.Arange[int64](0, 4, backend).Reshape(2, 2)
	row := tensor.Vector([]int64{10, 20}, backend)
	assert.Equal(t, []int64{10, 21, 12, 23}, checker.Add(row).Data())
}

func TestCast(t *testing.T) {
	backend := cpu.New()
	x := tensor.Vector([]float64{1.5, -2.7, 0}, backend)

	assert.Equal(t, []int64{1, -2, 0}, x.Int64().Data())
	assert.Equal(t, []int32{1, -2, 0}, x.Int32().Data())
	assert.Equal(t, []bool{true, true, false}, x.Bool().Data())
	assert.Equal(t, []uint8{1, 2}, tensor.Vector([]int64{1, 2}, backend).Uint8().Data())
	assert.Equal(t, "[1. 2. 3. 4.]", tensor.Vector([]int64{1, 2, 3, 4}, backend).Float64().String())
	assert.Equal(t, tensor.Float32, x.Float32().DType())

	same := x.Float64()
	assert.False(t, tensor.SharesMemory(x, same))
}

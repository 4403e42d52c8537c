package tensor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numtasks/internal/backend/cpu"
	"github.com/born-ml/numtasks/internal/tensor"
)

func TestZerosOnesFull(t *testing.T) {
	backend := cpu.New()

	zeros := tensor.Zeros[int32](tensor.Shape{2, 2}, backend)
	assert.Equal(t, []int32{0, 0, 0, 0}, zeros.Data())

	ones := tensor.Ones[float64](tensor.Shape{3}, backend)
	assert.Equal(t, []float64{1, 1, 1}, ones.Data())

	flags := tensor.Ones[bool](tensor.Shape{2}, backend)
	assert.Equal(t, []bool{true, true}, flags.Data())

	full := tensor.Full[uint8](tensor.Shape{2}, 7, backend)
	assert.Equal(t, []uint8{7, 7}, full.Data())
}

func TestArange(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"unit step", tensor.Arange[float64](0, 4, backend).Data(), []float64{0, 1, 2, 3}},
		{"fractional step", tensor.ArangeStep[float64](0, 1, 0.25, backend).Data(), []float64{0, 0.25, 0.5, 0.75}},
		{"negative step", tensor.ArangeStep[float64](3, 0, -1, backend).Data(), []float64{3, 2, 1}},
		{"empty", tensor.Arange[float64](5, 5, backend).Data(), []float64{}},
		{"backwards without step", tensor.Arange[float64](5, 1, backend).Data(), []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("arange mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Panics(t, func() { tensor.ArangeStep[int64](0, 5, 0, backend) })
}

func TestArange_Integers(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[int64](12, 38, backend)
	require.Equal(t, 26, x.NumElements())
	assert.Equal(t, int64(12), x.At(0))
	assert.Equal(t, int64(37), x.At(-1))
}

func TestLinspace(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, tensor.Linspace[float64](0, 1, 5, backend).Data())
	assert.Equal(t, []float64{3}, tensor.Linspace[float64](3, 9, 1, backend).Data())
	assert.Empty(t, tensor.Linspace[float64](0, 1, 0, backend).Data())
	assert.Equal(t, []int64{0, 2, 5, 7, 10}, tensor.Linspace[int64](0, 10, 5, backend).Data())
}

func TestEye(t *testing.T) {
	backend := cpu.New()

	eye := tensor.Eye[int64](3, backend)
	assert.Equal(t, []int64{1, 0, 0, 0, 1, 0, 0, 0, 1}, eye.Data())
}

func TestFromSlice_Errors(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2}, backend)
	require.Error(t, err)

	_, err = tensor.FromSlice([]float64{}, tensor.Shape{-1}, backend)
	require.Error(t, err)

	_, err = tensor.FromRows([][]int64{{1, 2}, {3}}, backend)
	require.Error(t, err)
}

func TestFromSlice_Copies(t *testing.T) {
	backend := cpu.New()

	src := []int64{1, 2, 3}
	x := tensor.Vector(src, backend)
	src[0] = 100
	assert.Equal(t, int64(1), x.At(0))
}

func TestAtSet(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float64](tensor.Shape{10}, backend)
	x.Set(11, 6)
	assert.Equal(t, 11.0, x.At(6))
	assert.Equal(t, 11.0, x.At(-4))

	m := tensor.Zeros[int64](tensor.Shape{2, 3}, backend)
	m.Set(5, 1, -1)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 5}, m.Data())

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0) })
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numtasks/internal/tensor"
)

func TestPad_Modes1D(t *testing.T) {
	backend := New()
	x := rawOf(t, []int64{1, 2, 3}, tensor.Shape{3})

	tests := []struct {
		mode tensor.PadMode
		want []int64
	}{
		{tensor.PadConstant, []int64{0, 0, 1, 2, 3, 0, 0, 0}},
		{tensor.PadEdge, []int64{1, 1, 1, 2, 3, 3, 3, 3}},
		{tensor.PadReflect, []int64{3, 2, 1, 2, 3, 2, 1, 2}},
		{tensor.PadSymmetric, []int64{2, 1, 1, 2, 3, 3, 2, 1}},
		{tensor.PadWrap, []int64{2, 3, 1, 2, 3, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := backend.Pad(x, [][2]int{{2, 3}}, tensor.PadOptions{Mode: tt.mode})
			assert.Equal(t, tt.want, result.AsInt64())
		})
	}
}

func TestPad_ConstantValue(t *testing.T) {
	backend := New()
	x := rawOf(t, []float64{1, 2}, tensor.Shape{2})

	result := backend.Pad(x, [][2]int{{1, 1}}, tensor.PadOptions{Value: 7})
	assert.Equal(t, []float64{7, 1, 2, 7}, result.AsFloat64())
}

func TestPad_Border2D(t *testing.T) {
	backend := New()
	ones := make([]float64, 9)
	for i := range ones {
		ones[i] = 1
	}
	x := rawOf(t, ones, tensor.Shape{3, 3})

	result := backend.Pad(x, [][2]int{{1, 1}}, tensor.PadOptions{})
	require.True(t, result.Shape().Equal(tensor.Shape{5, 5}), "shape %v", result.Shape())

	data := result.AsFloat64()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i > 0 && i < 4 && j > 0 && j < 4 {
				want = 1
			}
			assert.Equal(t, want, data[i*5+j], "element [%d,%d]", i, j)
		}
	}
}

func TestPad_PerDimensionWidths(t *testing.T) {
	backend := New()
	x := rawOf(t, []int32{1, 2, 3, 4}, tensor.Shape{2, 2})

	result := backend.Pad(x, [][2]int{{0, 1}, {1, 0}}, tensor.PadOptions{Mode: tensor.PadEdge})
	require.True(t, result.Shape().Equal(tensor.Shape{3, 3}))
	assert.Equal(t, []int32{1, 1, 2, 3, 3, 4, 3, 3, 4}, result.AsInt32())
}

func TestPad_Errors(t *testing.T) {
	backend := New()
	x := rawOf(t, []int64{1, 2, 3, 4}, tensor.Shape{2, 2})
	empty := rawOf(t, []int64{}, tensor.Shape{0})

	assert.Panics(t, func() {
		backend.Pad(x, [][2]int{{1, 1}, {1, 1}, {1, 1}}, tensor.PadOptions{})
	})
	assert.Panics(t, func() {
		backend.Pad(x, [][2]int{{-1, 0}}, tensor.PadOptions{})
	})
	assert.Panics(t, func() {
		backend.Pad(empty, [][2]int{{1, 1}}, tensor.PadOptions{Mode: tensor.PadWrap})
	})

	// Constant padding of an empty dimension is fine.
	result := backend.Pad(empty, [][2]int{{1, 1}}, tensor.PadOptions{Value: 5})
	assert.Equal(t, []int64{5, 5}, result.AsInt64())
}

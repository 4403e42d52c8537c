package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/numtasks/internal/backend/cpu"
	"github.com/born-ml/numtasks/internal/tensor"
)

func TestMemory(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[float64](tensor.Shape{3, 4}, backend)

	info := x.Memory()
	assert.Equal(t, 12, info.Size)
	assert.Equal(t, 8, info.ItemSize)
	assert.Equal(t, 96, info.NBytes)
	assert.Equal(t, []int{32, 8}, info.Strides)
	assert.True(t, info.Contiguous)
	assert.False(t, info.Shared)
	assert.Equal(t, "shape=(3, 4) dtype=float64 size=12 itemsize=8 nbytes=96 strides=(32, 8) contiguous=true shared=false", info.String())
}

func TestMemory_Shared(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[int32](0, 12, backend)
	y := x.Reshape(3, 4)

	assert.True(t, x.Memory().Shared)
	assert.True(t, y.Memory().Shared)
	assert.Equal(t, []int{16, 4}, y.Memory().Strides)

	y.Raw().Release()
	assert.False(t, x.Memory().Shared)
}

func TestMemory_ItemSizes(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, 4, tensor.Zeros[float32](tensor.Shape{1}, backend).Memory().ItemSize)
	assert.Equal(t, 8, tensor.Zeros[int64](tensor.Shape{1}, backend).Memory().ItemSize)
	assert.Equal(t, 1, tensor.Zeros[uint8](tensor.Shape{1}, backend).Memory().ItemSize)
	assert.Equal(t, 1, tensor.Zeros[bool](tensor.Shape{1}, backend).Memory().ItemSize)
}
